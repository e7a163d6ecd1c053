// stream.go: the token stream adapter.
//
// TokenStream is a pass-through layer over the Lexer: it can drop Comment
// tokens, stamp every token with a SourceID, and detach token text from the
// source buffer through a pluggable StringOwner. It performs no semantic
// transformation.
package steel

import "strings"

// StringOwner converts token text that aliases the source buffer into text
// the caller owns outright. Needed when tokens must outlive the buffer they
// were scanned from.
type StringOwner interface {
	Own(s string) string
}

// CloneOwner is the always-copy policy: token text is detached from the
// source buffer with strings.Clone.
type CloneOwner struct{}

func (CloneOwner) Own(s string) string { return strings.Clone(s) }

// TokenStream adapts a Lexer into a configured token producer.
type TokenStream struct {
	lex          *Lexer
	skipComments bool
	source       SourceID
	owner        StringOwner // nil leaves token text aliasing the buffer
}

// NewTokenStream creates a stream over src. When skipComments is set,
// Comment tokens are filtered out. A non-zero source is stamped onto every
// token and span the stream yields.
func NewTokenStream(src string, skipComments bool, source SourceID) *TokenStream {
	return &TokenStream{
		lex:          NewLexer(src),
		skipComments: skipComments,
		source:       source,
	}
}

// Owned routes every future token's text through owner and returns the
// stream for chaining.
func (ts *TokenStream) Owned(owner StringOwner) *TokenStream {
	ts.owner = owner
	return ts
}

// Offset reports how far into the buffer the stream has scanned, in bytes.
func (ts *TokenStream) Offset() int { return ts.lex.Span().End }

// Next returns the next token; the final token has Type EOF. A lexical
// error comes back as an Error-classed token covering the malformed span
// together with the *LexError describing it, and the stream stays usable
// afterward.
func (ts *TokenStream) Next() (Token, error) {
	for {
		tok, err := ts.lex.Next()
		tok.Span.Source = ts.source
		if ts.owner != nil {
			tok.Source = ts.owner.Own(tok.Source)
			if s, ok := tok.Literal.(string); ok {
				tok.Literal = ts.owner.Own(s)
			}
		}
		if err != nil {
			if le, ok := err.(*LexError); ok {
				le.Span.Source = ts.source
			}
			return tok, err
		}
		if tok.Type == Comment && ts.skipComments {
			continue
		}
		return tok, nil
	}
}
