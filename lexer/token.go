package lexer

import (
	"fmt"

	"github.com/hql-lang/hql/source"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt   TokenType
	text string
	span source.Span
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, text string, span source.Span) Token {
	return Token{
		tt:   tt,
		text: text,
		span: span,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the text of the lexical unit. For string tokens this is the
// content between the quotes with escapes left intact; for every other
// token it is the exact lexeme.
func (t Token) Text() string {
	return t.text
}

// Span returns the source interval covered by the lexical unit
func (t Token) Span() source.Span {
	return t.span
}

// Start returns the position of the first character of the lexical unit
func (t Token) Start() source.Position {
	return t.span.Start
}

// End returns the position just past the lexical unit
func (t Token) End() source.Position {
	return t.span.End
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q %v)", t.tt, t.text, t.span)
}
