// parser.go — the stack-based tree assembler.
//
// OVERVIEW
// --------
// The parser consumes the token stream and builds nested expression trees.
// Nesting is tracked on an explicit stack of sibling frames rather than by
// recursive descent, so input of arbitrary depth never grows the host call
// stack. Each call to Next yields exactly one top-level expression: the
// moment a closing delimiter empties the frame stack, the completed list is
// returned and any trailing input is left for the following call.
//
// Errors are typed and never recover a partial tree: a lexical error is
// passed through verbatim, a reserved word or stray closer at top level is
// an unexpected token, and an opened group that never closes is an
// unexpected end of input. A failed read does not invalidate earlier
// results, and the parser can keep reading past it.
package steel

import (
	"fmt"
	"io"
)

// Expr is one parsed expression: an Atom leaf or a List of children.
type Expr interface {
	expr()
}

// Atom wraps a single token.
type Atom struct {
	Token Token
}

// List holds the expressions collected between one matched pair of group
// delimiters, in source order.
type List struct {
	Items []Expr
}

func (Atom) expr() {}
func (List) expr() {}

// ParseErrorKind enumerates the parse failure classes.
type ParseErrorKind int

const (
	// TokenError wraps a lexical error surfaced by the stream.
	TokenError ParseErrorKind = iota
	// UnexpectedToken marks a reserved word or stray closing delimiter
	// where a standalone expression was expected.
	UnexpectedToken
	// UnexpectedEOF marks input that ended with a group still open.
	UnexpectedEOF
)

// ParseError is a typed parse failure.
type ParseError struct {
	Kind  ParseErrorKind
	Token Token     // offending token, set for UnexpectedToken
	Lex   *LexError // cause, set for TokenError
	Span  Span
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case TokenError:
		return e.Lex.Error()
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %s %q", e.Token.Type, e.Token.Source)
	case UnexpectedEOF:
		return "unexpected end of input"
	default:
		return "parse error"
	}
}

func (e *ParseError) Unwrap() error {
	if e.Lex != nil {
		return e.Lex
	}
	return nil
}

// Parser assembles expression trees from a token stream.
type Parser struct {
	stream *TokenStream
}

// NewParser creates a parser over src with comment suppression on and no
// source identifier.
func NewParser(src string) *Parser {
	return &Parser{stream: NewTokenStream(src, true, NoSource)}
}

// NewStreamParser creates a parser over an already-configured stream.
func NewStreamParser(stream *TokenStream) *Parser {
	return &Parser{stream: stream}
}

// Next returns the next top-level expression, or io.EOF once the input is
// exhausted. A failed read reports a *ParseError and leaves the parser
// positioned after the offending input.
func (p *Parser) Next() (Expr, error) {
	tok, err := p.stream.Next()
	if err != nil {
		return nil, wrapLexError(err, tok)
	}
	switch {
	case tok.Type == EOF:
		return nil, io.EOF
	case tok.Type == OpenParen:
		return p.readFromTokens()
	case tok.Type == CloseParen || tok.Type.IsReserved():
		return nil, &ParseError{Kind: UnexpectedToken, Token: tok, Span: tok.Span}
	default:
		return Atom{Token: tok}, nil
	}
}

// readFromTokens runs after an opening delimiter has been consumed. It
// keeps the in-progress sibling sequences on an explicit stack: an opener
// pushes the current frame, a closer pops back into it, and the result is
// done the instant a closer finds the stack empty.
func (p *Parser) readFromTokens() (Expr, error) {
	var stack [][]Expr
	var frame []Expr

	for {
		tok, err := p.stream.Next()
		if err != nil {
			return nil, wrapLexError(err, tok)
		}
		switch tok.Type {
		case EOF:
			return nil, &ParseError{Kind: UnexpectedEOF, Span: tok.Span}
		case OpenParen:
			stack = append(stack, frame)
			frame = nil
		case CloseParen:
			if n := len(stack); n > 0 {
				outer := stack[n-1]
				stack = stack[:n-1]
				outer = append(outer, List{Items: frame})
				frame = outer
			} else {
				return List{Items: frame}, nil
			}
		default:
			frame = append(frame, Atom{Token: tok})
		}
	}
}

// Parse reads every top-level expression in src.
func Parse(src string) ([]Expr, error) {
	p := NewParser(src)
	var out []Expr
	for {
		e, err := p.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func wrapLexError(err error, tok Token) error {
	if le, ok := err.(*LexError); ok {
		return &ParseError{Kind: TokenError, Lex: le, Span: tok.Span}
	}
	return err
}
