// printer.go: renders expression trees back to source-shaped text.
//
// Atoms print from their token: strings re-quote and re-escape their
// decoded content, character literals prefer the named forms from the fixed
// table, and everything else prints its exact source text. Lists print
// parenthesized with single spaces. The output is valid reader input, so
// Parse(FormatExpr(e)) yields a tree shaped like e.
package steel

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FormatExpr renders a single expression.
func FormatExpr(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// FormatExprs renders top-level expressions one per line.
func FormatExprs(exprs []Expr) string {
	var b strings.Builder
	for i, e := range exprs {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeExpr(&b, e)
	}
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case Atom:
		writeAtom(b, v.Token)
	case List:
		b.WriteByte('(')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeExpr(b, item)
		}
		b.WriteByte(')')
	}
}

func writeAtom(b *strings.Builder, tok Token) {
	switch tok.Type {
	case StringLiteral:
		if s, ok := tok.Literal.(string); ok {
			b.WriteString(quoteString(s))
			return
		}
		b.WriteString(tok.Source)
	case CharacterLiteral:
		if c, ok := tok.Literal.(rune); ok {
			b.WriteString(charLiteral(c))
			return
		}
		b.WriteString(tok.Source)
	default:
		b.WriteString(tok.Source)
	}
}

// quoteString re-quotes decoded string content using the reader's own
// escape set.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// charLiteral prints a character literal, preferring named spellings.
func charLiteral(c rune) string {
	switch c {
	case ' ':
		return `#\space`
	case '\t':
		return `#\tab`
	case '\n':
		return `#\newline`
	case '\r':
		return `#\return`
	}
	if unicode.IsGraphic(c) {
		return `#\` + string(c)
	}
	return fmt.Sprintf(`#\u{%s}`, strconv.FormatInt(int64(c), 16))
}
