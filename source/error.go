package source

import (
	"fmt"
	"strings"
)

// SyntaxError is the single error kind raised by the lexer and the reader,
// lexical and structural failures alike. It carries everything needed to
// render a caret diagnostic without re-reading the source.
type SyntaxError struct {
	Msg     string
	Pos     Position
	Excerpt string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", e.Pos, e.Msg)
}

// Render returns the source line the error points into with a caret mark
// under the offending column.
func (e *SyntaxError) Render() string {
	if e.Excerpt == "" {
		return e.Error()
	}
	pad := e.Pos.Column - 1
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("%s\n%s\n%s^", e.Error(), e.Excerpt, strings.Repeat(" ", pad))
}

// Errorf builds a SyntaxError at pos, capturing the source line as the
// excerpt at construction time.
func Errorf(src string, pos Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Msg:     fmt.Sprintf(format, args...),
		Pos:     pos,
		Excerpt: LineAt(src, pos),
	}
}

// LineAt extracts the line of src containing pos, without the trailing
// newline.
func LineAt(src string, pos Position) string {
	off := pos.Offset
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}
	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := strings.IndexByte(src[off:], '\n')
	if end < 0 {
		return src[start:]
	}
	return src[start : off+end]
}
