// lexer.go: the character-level scanner.
//
// The scanner is a rune cursor over one immutable source buffer. Each call
// to Next classifies the next lexical unit and advances past it, tracking
// the pending token as a byte span [tokenStart, tokenEnd). Malformed
// numeric-looking input is never an error: number reading aborts and the
// whole span is re-read as a generic word, so text like "1/" or "3-" lexes
// as an identifier. The only hard errors are the string, character and
// radix failures enumerated by LexErrorKind.
package steel

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LexErrorKind enumerates the lexical failure classes.
type LexErrorKind int

const (
	UnexpectedChar LexErrorKind = iota
	IncompleteString
	InvalidEscape
	InvalidCharacter
	MalformedHexInteger
	MalformedOctalInteger
	MalformedBinaryInteger
)

// LexError describes a malformed token. Span covers the input consumed
// before scanning gave up.
type LexError struct {
	Kind LexErrorKind
	Char rune // offending rune, set for UnexpectedChar
	Span Span
}

func (e *LexError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("unexpected character %q", e.Char)
	case IncompleteString:
		return "incomplete string literal"
	case InvalidEscape:
		return "invalid escape sequence in string literal"
	case InvalidCharacter:
		return "invalid character literal"
	case MalformedHexInteger:
		return "malformed hex integer literal"
	case MalformedOctalInteger:
		return "malformed octal integer literal"
	case MalformedBinaryInteger:
		return "malformed binary integer literal"
	default:
		return "lexical error"
	}
}

// Lexer scans one source buffer. State lasts for a single pass; independent
// buffers can be lexed concurrently without synchronization.
type Lexer struct {
	src        string
	tokenStart int
	tokenEnd   int
}

// NewLexer creates a scanner positioned at the start of src.
func NewLexer(src string) *Lexer { return &Lexer{src: src} }

// Span returns the byte span of the most recently scanned token.
func (l *Lexer) Span() Span { return Span{Start: l.tokenStart, End: l.tokenEnd} }

// Slice returns the exact source text of the most recently scanned token.
func (l *Lexer) Slice() string { return l.src[l.tokenStart:l.tokenEnd] }

func (l *Lexer) peek() (rune, bool) {
	if l.tokenEnd >= len(l.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.tokenEnd:])
	return r, true
}

func (l *Lexer) eat() (rune, bool) {
	if l.tokenEnd >= len(l.src) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(l.src[l.tokenEnd:])
	l.tokenEnd += size
	return r, true
}

func (l *Lexer) consumeWhitespace() {
	for {
		r, ok := l.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		l.eat()
		l.tokenStart = l.tokenEnd
	}
}

func (l *Lexer) token(tt TokenType, lit any) Token {
	return Token{Type: tt, Source: l.Slice(), Literal: lit, Span: l.Span()}
}

// errToken pairs an Error-marker token covering the consumed span with the
// typed error describing it.
func (l *Lexer) errToken(err *LexError) (Token, error) {
	return Token{Type: Error, Source: l.Slice(), Span: l.Span()}, err
}

// Next scans one token. At end of input it returns a token with Type EOF.
// On a lexical error it returns an Error-classed token together with the
// *LexError; the cursor has advanced past the bad input, so scanning can
// resume with the following call.
func (l *Lexer) Next() (Token, error) {
	l.consumeWhitespace()
	l.tokenStart = l.tokenEnd

	r, ok := l.peek()
	if !ok {
		return l.token(EOF, nil), nil
	}

	switch r {
	case ';':
		l.eat()
		l.readRestOfLine()
		return l.token(Comment, nil), nil

	case '"':
		s, err := l.readString()
		if err != nil {
			return l.errToken(err)
		}
		return l.token(StringLiteral, s), nil

	case '(', '[', '{':
		l.eat()
		return l.token(OpenParen, nil), nil

	case ')', ']', '}':
		l.eat()
		return l.token(CloseParen, nil), nil

	case '\'':
		l.eat()
		return l.token(QuoteTick, nil), nil

	case '`':
		l.eat()
		return l.token(QuasiQuote, nil), nil

	case ',':
		l.eat()
		if n, ok := l.peek(); ok && n == '@' {
			l.eat()
			return l.token(UnquoteSplice, nil), nil
		}
		return l.token(Unquote, nil), nil

	case '+':
		// "+" followed by a digit is a signed number; a bare "+" is the
		// identifier "+" on its own, it does not continue into word reading.
		// "-" below does continue. The asymmetry is deliberate.
		l.eat()
		if n, ok := l.peek(); ok && unicode.IsNumber(n) {
			return l.readNumber(), nil
		}
		return l.token(Identifier, l.Slice()), nil

	case '-':
		l.eat()
		if n, ok := l.peek(); ok && unicode.IsNumber(n) {
			return l.readNumber(), nil
		}
		return l.readWord(), nil

	case '#':
		l.eat()
		tok, err := l.readHash()
		if err != nil {
			return l.errToken(err)
		}
		return tok, nil
	}

	switch {
	case !unicode.IsSpace(r) && !unicode.IsNumber(r) || r == '_':
		return l.readWord(), nil
	case unicode.IsNumber(r):
		return l.readNumber(), nil
	default:
		l.eat()
		return l.errToken(&LexError{Kind: UnexpectedChar, Char: r, Span: l.Span()})
	}
}

// readRestOfLine consumes through the next newline (inclusive) or to the
// end of input.
func (l *Lexer) readRestOfLine() {
	for {
		r, ok := l.eat()
		if !ok || r == '\n' {
			return
		}
	}
}

// readString decodes a double-quoted string literal. Recognized escapes are
// \" \\ \t \n \r \0; anything else after a backslash is an invalid escape,
// and running out of input before the closing quote is an incomplete string.
func (l *Lexer) readString() (string, *LexError) {
	l.eat() // opening quote

	var buf strings.Builder
	for {
		r, ok := l.eat()
		if !ok {
			break
		}
		switch r {
		case '"':
			return buf.String(), nil
		case '\\':
			esc, ok := l.peek()
			if !ok {
				return "", &LexError{Kind: InvalidEscape, Span: l.Span()}
			}
			switch esc {
			case '"':
				l.eat()
				buf.WriteByte('"')
			case '\\':
				l.eat()
				buf.WriteByte('\\')
			case 't':
				l.eat()
				buf.WriteByte('\t')
			case 'n':
				l.eat()
				buf.WriteByte('\n')
			case 'r':
				l.eat()
				buf.WriteByte('\r')
			case '0':
				l.eat()
				buf.WriteByte(0)
			default:
				return "", &LexError{Kind: InvalidEscape, Span: l.Span()}
			}
		default:
			buf.WriteRune(r)
		}
	}
	return "", &LexError{Kind: IncompleteString, Span: l.Span()}
}

// readHash resolves everything introduced by '#': booleans, long sigils,
// radix integers, #:-keywords and character literals. Unrecognized hash
// text falls back to generic word reading, which is how spellings like
// "#%define" reach the reserved-word table.
func (l *Lexer) readHash() (Token, *LexError) {
	for {
		r, ok := l.peek()
		if !ok {
			break
		}
		if r == '\\' {
			// Escaped pair, e.g. the backslash of a character literal and
			// whatever follows it, bracket characters included.
			l.eat()
			l.eat()
			continue
		}
		if r == '(' || r == '[' || r == ')' || r == ']' || unicode.IsSpace(r) {
			break
		}
		l.eat()
	}

	slice := l.Slice()
	switch {
	case slice == "#true" || slice == "#t":
		return l.token(BooleanLiteral, true), nil
	case slice == "#false" || slice == "#f":
		return l.token(BooleanLiteral, false), nil

	case slice == "#'":
		return l.token(QuoteSyntax, nil), nil
	case slice == "#`":
		return l.token(QuasiQuoteSyntax, nil), nil
	case slice == "#,":
		return l.token(UnquoteSyntax, nil), nil
	case slice == "#,@":
		return l.token(UnquoteSpliceSyntax, nil), nil

	case strings.HasPrefix(slice, "#x"):
		return l.radixInt(slice[2:], 16, MalformedHexInteger)
	case strings.HasPrefix(slice, "#o"):
		return l.radixInt(slice[2:], 8, MalformedOctalInteger)
	case strings.HasPrefix(slice, "#b"):
		return l.radixInt(slice[2:], 2, MalformedBinaryInteger)

	case strings.HasPrefix(slice, "#:"):
		return l.token(Keyword, slice), nil

	case strings.HasPrefix(slice, `#\`):
		if c, ok := parseCharLiteral(slice); ok {
			return l.token(CharacterLiteral, c), nil
		}
		return Token{}, &LexError{Kind: InvalidCharacter, Span: l.Span()}

	default:
		return l.readWord(), nil
	}
}

// radixInt parses the digits of a #x/#o/#b literal at arbitrary precision.
func (l *Lexer) radixInt(digits string, base int, kind LexErrorKind) (Token, *LexError) {
	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Token{}, &LexError{Kind: kind, Span: l.Span()}
	}
	return l.token(IntegerLiteral, intFromBig(b)), nil
}

// parseCharLiteral resolves the body of a "#\..." literal: the fixed name
// table first, then a code-point escape, then a single literal rune.
func parseCharLiteral(slice string) (rune, bool) {
	body := slice[2:]
	if c, ok := charNames[body]; ok {
		return c, true
	}
	if c, ok := parseCodePoint(body); ok {
		return c, true
	}
	rs := []rune(body)
	if len(rs) == 1 {
		return rs[0], true
	}
	return 0, false
}

// parseCodePoint accepts the escape forms u{XXXX} and uXXXX (hex digits,
// upper or lower case u).
func parseCodePoint(body string) (rune, bool) {
	if len(body) < 2 || (body[0] != 'u' && body[0] != 'U') {
		return 0, false
	}
	hex := body[1:]
	if strings.HasPrefix(hex, "{") && strings.HasSuffix(hex, "}") {
		hex = hex[1 : len(hex)-1]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, false
	}
	return rune(v), true
}

// readNumber is the numeric state machine. It consumes digits, defers to
// the float phase on '.', 'e' or 'E' and to the fraction phase on '/', and
// on any character it cannot place it re-reads the entire span as a generic
// word. That abort-to-word fallback is the specified behavior, not error
// recovery: "1e", "1.2e5.4" and "1//4" are identifiers.
func (l *Lexer) readNumber() Token {
	hasE := false

digits:
	for {
		r, ok := l.peek()
		if !ok {
			break
		}
		switch {
		case unicode.IsNumber(r):
			l.eat()
		case r == '(' || r == ')' || r == '[' || r == ']':
			break digits
		case r == '.' || r == '/':
			break digits
		case r == 'e' || r == 'E':
			hasE = true
			break digits
		case unicode.IsSpace(r):
			break digits
		default:
			l.eat()
			return l.readWord()
		}
	}

	r, ok := l.peek()
	switch {
	case ok && (r == '.' || r == 'e' || r == 'E'):
		l.eat()
	float:
		for {
			c, ok := l.peek()
			if !ok {
				break
			}
			switch {
			case unicode.IsNumber(c):
				l.eat()
			case (c == 'e' || c == 'E') && !hasE:
				hasE = true
				l.eat()
			case c == '(' || c == '[' || c == ')' || c == ']':
				break float
			case unicode.IsSpace(c):
				break float
			default:
				l.eat()
				return l.readWord()
			}
		}
		text := l.Slice()
		if last := text[len(text)-1]; last == 'e' || last == 'E' {
			// Dangling exponent marker, e.g. "1e" at a delimiter.
			return l.readWord()
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return l.readWord()
		}
		return l.token(NumberLiteral, v)

	case ok && r == '/':
		numerator := l.Slice()
		l.eat()
	denom:
		for {
			c, ok := l.peek()
			if !ok {
				break
			}
			switch {
			case unicode.IsNumber(c):
				l.eat()
			case c == '(' || c == '[' || c == ')' || c == ']':
				break denom
			case unicode.IsSpace(c):
				break denom
			default:
				l.eat()
				return l.readWord()
			}
		}
		denominator := l.Slice()[len(numerator)+1:]
		if denominator == "" {
			return l.readWord()
		}
		num, okN := ParseInt(numerator)
		den, okD := ParseInt(denominator)
		if !okN || !okD {
			return l.readWord()
		}
		return l.token(FractionLiteral, Rational{Num: num, Den: den})

	default:
		v, okV := ParseInt(l.Slice())
		if !okV {
			return l.readWord()
		}
		return l.token(IntegerLiteral, v)
	}
}

// readWord consumes a generic word: everything up to a bracket, whitespace
// or an unescaped quote tick. A backslash escapes the following rune into
// the word, which permits an apostrophe inside an identifier. The finished
// text is matched case-sensitively against the reserved-word table.
func (l *Lexer) readWord() Token {
	for {
		r, ok := l.peek()
		if !ok {
			break
		}
		if r == '(' || r == '[' || r == ')' || r == ']' ||
			r == '\'' || unicode.IsSpace(r) {
			break
		}
		if r == '\\' {
			l.eat()
			l.eat()
			continue
		}
		l.eat()
	}

	word := l.Slice()
	if tt, ok := keywords[word]; ok {
		return l.token(tt, nil)
	}
	return l.token(Identifier, word)
}
