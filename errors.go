// errors.go: user-facing error wrapping and caret-snippet rendering.
//
// Turns the typed lexer/parser diagnostics into readable snippets with a
// caret pointing at the offending column:
//
//	PARSE ERROR in boot.scm at 2:1: unexpected end of input
//
//	   1 | (define (loop)
//	   2 |   (loop
//	       | ^
//
// Line and column are derived on demand from the error's byte span via
// PositionOf; coordinates are clamped so short or empty sources never break
// rendering. Errors of any other type pass through untouched. Output is
// plain text, suitable for logs and terminals.
package steel

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns err augmented with a caret-annotated snippet
// of src when err is a *LexError or *ParseError, and err unchanged
// otherwise.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name shown in the
// header ("LEXICAL ERROR in <name> at ...").
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *LexError:
		pos := PositionOf(src, e.Span.Start)
		return fmt.Errorf("%s", caretSnippet(src, "LEXICAL ERROR", srcName, pos.Line, pos.Col+1, e.Error()))
	case *ParseError:
		header := "PARSE ERROR"
		if e.Kind == TokenError {
			// A lexical failure surfaced through the parser renders under
			// its own header.
			header = "LEXICAL ERROR"
		}
		pos := PositionOf(src, e.Span.Start)
		return fmt.Errorf("%s", caretSnippet(src, header, srcName, pos.Line, pos.Col+1, e.Error()))
	default:
		return err
	}
}

// caretSnippet builds the header plus up to one line of context on each
// side, with a caret under the 1-based column. Coordinates out of range are
// clamped to the source bounds.
func caretSnippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
