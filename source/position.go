package source

import (
	"fmt"
	"unicode/utf8"
)

// Position is a location in source text. Line and Column are 1-based and
// Column counts runes, not bytes; Offset is the 0-based byte offset. The
// zero Position means "no position".
type Position struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether the position points into source text.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Advance returns the position just past r.
func (p Position) Advance(r rune) Position {
	p.Offset += utf8.RuneLen(r)
	if r == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}

// AdvanceString returns the position just past s. Invalid UTF-8 bytes
// advance the cursor one byte and one column each, keeping Offset exact.
func (p Position) AdvanceString(s string) Position {
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && w == 1 {
			p.Offset++
			p.Column++
		} else {
			p = p.Advance(r)
		}
		i += w
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open source interval [Start.Offset, End.Offset). Nodes
// built by desugaring carry the zero Span since they have no surface text
// of their own.
type Span struct {
	Start Position
	End   Position
}

// IsValid reports whether the span points into source text.
func (s Span) IsValid() bool {
	return s.Start.IsValid()
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// ContainsSpan reports whether o lies entirely inside s.
func (s Span) ContainsSpan(o Span) bool {
	return o.Start.Offset >= s.Start.Offset && o.End.Offset <= s.End.Offset
}

// Before reports whether s ends at or before the start of o.
func (s Span) Before(o Span) bool {
	return s.End.Offset <= o.Start.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}
