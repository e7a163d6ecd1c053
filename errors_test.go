// errors_test.go
package steel

import (
	"errors"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_ErrorWrap_Parse_ShowsCaretAndContext(t *testing.T) {
	// Three lines; stray closer on line 2.
	src := "(define x 1)\n)\n(ok)"

	_, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
	msg := WrapErrorWithSource(err, src).Error()

	mustContain(t, msg, "PARSE ERROR at 2:1")
	mustContain(t, msg, "unexpected token")
	mustContain(t, msg, "   1 | (define x 1)")
	mustContain(t, msg, "   2 | )")
	mustContain(t, msg, "   3 | (ok)")
	mustContain(t, msg, "     | ^")
}

func Test_ErrorWrap_Lex_ShowsCaretAndContext(t *testing.T) {
	src := "(display\n  \"bad \\q\")"

	_, err := Parse(src)
	if err == nil {
		t.Fatalf("expected lex error, got nil")
	}
	msg := WrapErrorWithSource(err, src).Error()

	mustContain(t, msg, "LEXICAL ERROR at 2:3")
	mustContain(t, msg, "invalid escape")
	mustContain(t, msg, "   1 | (display")
	mustContain(t, msg, "^")
}

func Test_ErrorWrap_WithName(t *testing.T) {
	src := "("
	_, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
	msg := WrapErrorWithName(err, "boot.scm", src).Error()
	mustContain(t, msg, "PARSE ERROR in boot.scm at")
	mustContain(t, msg, "unexpected end of input")
}

func Test_ErrorWrap_PassthroughForeignErrors(t *testing.T) {
	sentinel := errors.New("something else")
	if got := WrapErrorWithSource(sentinel, "src"); got != sentinel {
		t.Fatalf("foreign errors must pass through unchanged, got %v", got)
	}
}

func Test_ErrorWrap_EmptySource(t *testing.T) {
	_, err := Parse("(")
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
	// Rendering against a short/empty buffer must not panic.
	msg := WrapErrorWithSource(err, "").Error()
	mustContain(t, msg, "PARSE ERROR")
}
