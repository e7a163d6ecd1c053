// tokens.go: token classes, the reserved-word table, and the named-character table.
package steel

// TokenType tags the lexical class of a token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	Error
	Comment

	// Structure. The three bracket families ( ) [ ] { } are interchangeable;
	// only balance matters, not matching kind.
	OpenParen
	CloseParen

	// Reader-syntax sigils
	QuoteTick           // '
	QuasiQuote          // `
	Unquote             // ,
	UnquoteSplice       // ,@
	QuoteSyntax         // #'
	QuasiQuoteSyntax    // #`
	UnquoteSyntax       // #,
	UnquoteSpliceSyntax // #,@

	// Literals
	BooleanLiteral
	IntegerLiteral
	NumberLiteral
	FractionLiteral
	CharacterLiteral
	StringLiteral
	Keyword // #:-prefixed bare atom, kept verbatim

	Identifier

	// Reserved words
	Define
	Let
	PlainLet
	Lambda
	Begin
	Quote
	Set
	If
	Require
	DefineSyntax
	SyntaxRules
	Ellipses
	Return
)

var tokenNames = map[TokenType]string{
	EOF:                 "EOF",
	Error:               "Error",
	Comment:             "Comment",
	OpenParen:           "OpenParen",
	CloseParen:          "CloseParen",
	QuoteTick:           "QuoteTick",
	QuasiQuote:          "QuasiQuote",
	Unquote:             "Unquote",
	UnquoteSplice:       "UnquoteSplice",
	QuoteSyntax:         "QuoteSyntax",
	QuasiQuoteSyntax:    "QuasiQuoteSyntax",
	UnquoteSyntax:       "UnquoteSyntax",
	UnquoteSpliceSyntax: "UnquoteSpliceSyntax",
	BooleanLiteral:      "BooleanLiteral",
	IntegerLiteral:      "IntegerLiteral",
	NumberLiteral:       "NumberLiteral",
	FractionLiteral:     "FractionLiteral",
	CharacterLiteral:    "CharacterLiteral",
	StringLiteral:       "StringLiteral",
	Keyword:             "Keyword",
	Identifier:          "Identifier",
	Define:              "Define",
	Let:                 "Let",
	PlainLet:            "PlainLet",
	Lambda:              "Lambda",
	Begin:               "Begin",
	Quote:               "Quote",
	Set:                 "Set",
	If:                  "If",
	Require:             "Require",
	DefineSyntax:        "DefineSyntax",
	SyntaxRules:         "SyntaxRules",
	Ellipses:            "Ellipses",
	Return:              "Return",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return "Unknown"
}

// IsReserved reports whether t is a reserved word. A reserved word cannot
// stand alone as a top-level expression.
func (t TokenType) IsReserved() bool {
	switch t {
	case Define, Let, PlainLet, Lambda, Begin, Quote, Set, If,
		Require, DefineSyntax, SyntaxRules, Ellipses, Return:
		return true
	default:
		return false
	}
}

// Token is one lexical unit. Source is the exact source text addressed by
// Span; Literal carries the decoded payload for literal classes:
//
//	BooleanLiteral   bool
//	IntegerLiteral   Int
//	NumberLiteral    float64
//	FractionLiteral  Rational
//	CharacterLiteral rune
//	StringLiteral    string (escapes decoded)
//	Keyword          string (verbatim, including the "#:")
//	Identifier       string
//
// Tokens are never mutated after the lexer emits them.
type Token struct {
	Type    TokenType
	Source  string
	Literal any
	Span    Span
}

// keywords maps exact word text to reserved-word token types, matched
// case-sensitively after generic word reading.
var keywords = map[string]TokenType{
	"define":         Define,
	"defn":           Define,
	"#%define":       Define,
	"let":            Let,
	"%plain-let":     PlainLet,
	"return!":        Return,
	"begin":          Begin,
	"lambda":         Lambda,
	"fn":             Lambda,
	"#%plain-lambda": Lambda,
	"λ":              Lambda,
	"quote":          Quote,
	"syntax-rules":   SyntaxRules,
	"define-syntax":  DefineSyntax,
	"...":            Ellipses,
	"set!":           Set,
	"require":        Require,
	"if":             If,
}

// charNames is the fixed table of character-literal names recognized after
// the "#\" prefix. Anything else falls back to a code-point escape or a
// single literal rune.
var charNames = map[string]rune{
	"SPACE":   ' ',
	"space":   ' ',
	"TAB":     '\t',
	"tab":     '\t',
	"NEWLINE": '\n',
	"newline": '\n',
	"RETURN":  '\r',
	"return":  '\r',
	"(":       '(',
	")":       ')',
	"[":       '[',
	"]":       ']',
	"^":       '^',
	"\\":      '\\',
}
