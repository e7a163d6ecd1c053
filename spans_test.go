// spans_test.go
package steel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Span_Text(t *testing.T) {
	src := "(+ a b)"
	assert.Equal(t, "+", NewSpan(1, 2, NoSource).Text(src))
	assert.Equal(t, "", NewSpan(3, 3, NoSource).Text(src))
	// Clamped, never panicking.
	assert.Equal(t, "b)", NewSpan(5, 99, NoSource).Text(src))
	assert.Equal(t, "", NewSpan(-2, 0, NoSource).Text(src))
}

func Test_Span_Len(t *testing.T) {
	s := NewSpan(4, 9, NoSource)
	assert.Equal(t, 5, s.Len())
	assert.False(t, s.IsEmpty())
	assert.True(t, NewSpan(4, 4, NoSource).IsEmpty())
}

func Test_PositionOf(t *testing.T) {
	src := "abc\ndef\nghi"
	assert.Equal(t, Position{Line: 1, Col: 0}, PositionOf(src, 0))
	assert.Equal(t, Position{Line: 1, Col: 2}, PositionOf(src, 2))
	assert.Equal(t, Position{Line: 2, Col: 0}, PositionOf(src, 4))
	assert.Equal(t, Position{Line: 3, Col: 2}, PositionOf(src, 10))
	// Clamped at both ends.
	assert.Equal(t, Position{Line: 1, Col: 0}, PositionOf(src, -1))
	assert.Equal(t, Position{Line: 3, Col: 3}, PositionOf(src, 99))
}

// Spans are byte offsets, so they stay exact under multi-byte characters.
func Test_Span_MultiByte(t *testing.T) {
	src := "λ (λx 1)"
	stream := NewTokenStream(src, true, NoSource)
	for {
		tok, err := stream.Next()
		assert.NoError(t, err)
		if tok.Type == EOF {
			break
		}
		assert.Equal(t, tok.Source, tok.Span.Text(src))
	}
}
