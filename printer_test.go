// printer_test.go
package steel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func format1(t *testing.T, src string) string {
	t.Helper()
	exprs, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	return FormatExpr(exprs[0])
}

func Test_Printer_Atoms(t *testing.T) {
	assert.Equal(t, "foo", format1(t, "foo"))
	assert.Equal(t, "42", format1(t, "42"))
	assert.Equal(t, "-1.5", format1(t, "-1.5"))
	assert.Equal(t, "1/4", format1(t, "1/4"))
	assert.Equal(t, "#t", format1(t, "#t"))
	assert.Equal(t, "#:kw", format1(t, "#:kw"))
}

func Test_Printer_Lists(t *testing.T) {
	assert.Equal(t, "()", format1(t, "()"))
	assert.Equal(t, "(+ a b)", format1(t, "(+ a b)"))
	assert.Equal(t, "(a (b (c)))", format1(t, "(a   (b (c  )))"))
	// Bracket families normalize to parentheses.
	assert.Equal(t, "(a (b))", format1(t, "[ a  (b) ]"))
}

func Test_Printer_Strings(t *testing.T) {
	assert.Equal(t, `"Foo bar"`, format1(t, `"Foo bar"`))
	// Decoded content is re-escaped with the reader's own escape set.
	assert.Equal(t, `"\"\\"`, format1(t, `"\"\\"`))
	assert.Equal(t, `"a\nb\tc"`, format1(t, `"a\nb\tc"`))
}

func Test_Printer_Chars(t *testing.T) {
	assert.Equal(t, `#\a`, format1(t, `#\a`))
	assert.Equal(t, `#\λ`, format1(t, `#\λ`))
	// Named spellings win over raw characters.
	assert.Equal(t, `#\space`, format1(t, `#\SPACE`))
	assert.Equal(t, `#\newline`, format1(t, `#\newline`))
	assert.Equal(t, `#\tab`, format1(t, `#\TAB`))
}

func Test_Printer_FormatExprs(t *testing.T) {
	exprs, err := Parse("(a) (b c)")
	require.NoError(t, err)
	assert.Equal(t, "(a)\n(b c)", FormatExprs(exprs))
}

// Printed output is valid reader input with the same shape.
func Test_Printer_RoundTrip(t *testing.T) {
	sources := []string{
		"(define (foo a b) (+ (- a 1) b))",
		`(display "a\nb" #\space 1/4)`,
		"(if #t '(1 2) `(,x ,@xs))",
	}
	for _, src := range sources {
		first, err := Parse(src)
		require.NoError(t, err, src)
		second, err := Parse(FormatExprs(first))
		require.NoError(t, err, src)
		assert.Equal(t, FormatExprs(first), FormatExprs(second), src)
	}
}
