// spans.go — byte spans and line/column mapping for diagnostics.
//
// Spans are half-open byte intervals [Start, End) relative to the UTF-8
// source. Line/column coordinates are intentionally not stored on tokens;
// callers derive them on demand from the original source text via
// PositionOf, which keeps the hot lexing path free of line bookkeeping and
// keeps spans exact under multi-byte characters.
package steel

import "strings"

// SourceID identifies one source buffer when several files feed the same
// diagnostic sink. The zero value means "no source recorded"; real
// identifiers start at 1.
type SourceID uint32

// NoSource is the absent source identifier.
const NoSource SourceID = 0

// Span is a half-open byte interval [Start, End) into the source buffer,
// optionally tagged with the buffer's SourceID. Invariant: Start <= End, and
// the substring a token's span addresses equals that token's Source text.
type Span struct {
	Start  int
	End    int
	Source SourceID
}

// NewSpan builds a span over [start, end).
func NewSpan(start, end int, source SourceID) Span {
	return Span{Start: start, End: end, Source: source}
}

// Len is the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// Text returns the substring of src the span addresses. Out-of-range spans
// are clamped rather than panicking so partial diagnostics stay safe.
func (s Span) Text(src string) string {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start >= end {
		return ""
	}
	return src[start:end]
}

// Position is a source coordinate derived from a byte offset: 1-based line,
// 0-based byte column within that line.
type Position struct {
	Line int
	Col  int
}

// PositionOf converts a byte offset into line/column coordinates against
// src. Offsets beyond the end of src report the position after the final byte.
func PositionOf(src string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	line := 1 + strings.Count(src[:offset], "\n")
	col := offset
	if i := strings.LastIndexByte(src[:offset], '\n'); i >= 0 {
		col = offset - i - 1
	}
	return Position{Line: line, Col: col}
}
