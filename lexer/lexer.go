package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/hql-lang/hql/source"
)

type lexState func(*Lexer) lexState

const eof = rune(-1)

// Options controls how the lexer behaves.
type Options struct {
	// Tolerant keeps the lexer going after a lexical error: an
	// unterminated string becomes a string token that runs to the end of
	// the input and an unexpected character is skipped, with the error
	// recorded either way.
	Tolerant bool

	// Start rebases the position cursor, so a fragment cut out of a larger
	// document reports positions relative to that document.
	Start source.Position
}

// Lexer represents a lexical analyzer
type Lexer struct {
	src  string
	opts Options

	off int
	pos source.Position

	startOff int
	startPos source.Position

	tokens []Token
	errs   []*source.SyntaxError
	fatal  *source.SyntaxError
}

// New initializes a Lexer for the given source text
func New(src string) *Lexer {
	start := source.Position{Line: 1, Column: 1}
	return &Lexer{
		src:      src,
		pos:      start,
		startPos: start,
	}
}

// SetOptions changes the lexer options
func (lx *Lexer) SetOptions(opts Options) {
	lx.opts = opts
	if opts.Start.IsValid() {
		lx.pos = opts.Start
		lx.startPos = opts.Start
	}
}

// Run scans the whole input. In strict mode it stops at the first lexical
// error and returns it; in tolerant mode it always scans to the end and
// returns nil, leaving the diagnostics in Errors.
func (lx *Lexer) Run() error {
	for state := lexAny; state != nil; {
		state = state(lx)
	}
	if lx.fatal != nil {
		return lx.fatal
	}
	lx.emit(TokenEOF)
	return nil
}

// Tokens returns the tokens scanned so far. After a successful Run the
// last token is always TokenEOF.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Errors returns the lexical errors found during a tolerant run.
func (lx *Lexer) Errors() []*source.SyntaxError {
	return lx.errs
}

func (lx *Lexer) next() rune {
	if lx.off >= len(lx.src) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.src[lx.off:])
	lx.off += w
	if r == utf8.RuneError && w == 1 {
		lx.pos.Offset++
		lx.pos.Column++
	} else {
		lx.pos = lx.pos.Advance(r)
	}
	return r
}

func (lx *Lexer) peek() rune {
	if lx.off >= len(lx.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.off:])
	return r
}

func (lx *Lexer) emit(tt TokenType) {
	lx.emitText(tt, lx.src[lx.startOff:lx.off])
}

func (lx *Lexer) emitText(tt TokenType, text string) {
	lx.tokens = append(lx.tokens, Token{
		tt:   tt,
		text: text,
		span: source.Span{Start: lx.startPos, End: lx.pos},
	})
	lx.startOff = lx.off
	lx.startPos = lx.pos
}

func (lx *Lexer) ignore() {
	lx.startOff = lx.off
	lx.startPos = lx.pos
}

func (lx *Lexer) errorf(pos source.Position, format string, args ...interface{}) *source.SyntaxError {
	return source.Errorf(lx.src, pos, format, args...)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexAny
	}
}

func lexFatal(err *source.SyntaxError) lexState {
	return func(lx *Lexer) lexState {
		lx.errs = append(lx.errs, err)
		lx.fatal = err
		return nil
	}
}

// lexAny dispatches on the first character of the next token. Rule order:
// the two-character tokens "#[" and "~@" win over their one-character
// prefixes, then the single-character tokens, strings, comments and
// whitespace, and finally maximal symbol runs.
func lexAny(lx *Lexer) lexState {
	r := lx.next()

	switch {
	case r == eof:
		return nil

	case r == '#' && lx.peek() == '[':
		lx.next()
		return lexEmit(TokenOpenSet)

	case r == '~' && lx.peek() == '@':
		lx.next()
		return lexEmit(TokenUnquoteSplicing)

	case r == '(':
		return lexEmit(TokenOpenParen)
	case r == ')':
		return lexEmit(TokenCloseParen)
	case r == '[':
		return lexEmit(TokenOpenBracket)
	case r == ']':
		return lexEmit(TokenCloseBracket)
	case r == '{':
		return lexEmit(TokenOpenBrace)
	case r == '}':
		return lexEmit(TokenCloseBrace)

	case r == '.':
		return lexEmit(TokenDot)
	case r == ':':
		return lexEmit(TokenColon)
	case r == ',':
		return lexEmit(TokenComma)
	case r == '\'':
		return lexEmit(TokenQuote)
	case r == '`':
		return lexEmit(TokenQuasiquote)
	case r == '~':
		return lexEmit(TokenUnquote)

	case r == '"':
		return lexString

	case r == ';':
		return lexLineComment
	case r == '/' && lx.peek() == '/':
		lx.next()
		return lexLineComment
	case r == '/' && lx.peek() == '*':
		lx.next()
		return lexBlockComment

	case unicode.IsSpace(r):
		return lexWhitespace

	case unicode.IsControl(r):
		err := lx.errorf(lx.startPos, "Unexpected character")
		if !lx.opts.Tolerant {
			return lexFatal(err)
		}
		lx.errs = append(lx.errs, err)
		lx.ignore()
		return lexAny

	default:
		return lexSymbol
	}
}

// lexString scans the remainder of a double-quoted literal. The emitted
// token text is the content between the quotes with escape pairs left
// intact; the reader performs the unescaping.
func lexString(lx *Lexer) lexState {
	for {
		switch lx.next() {
		case eof:
			err := lx.errorf(lx.startPos, "Unterminated string")
			if !lx.opts.Tolerant {
				return lexFatal(err)
			}
			lx.errs = append(lx.errs, err)
			lx.emitText(TokenString, lx.src[lx.startOff+1:lx.off])
			return lexAny

		case '\\':
			if lx.peek() != eof {
				lx.next()
			}

		case '"':
			lx.emitText(TokenString, lx.src[lx.startOff+1:lx.off-1])
			return lexAny
		}
	}
}

func lexLineComment(lx *Lexer) lexState {
	for lx.peek() != '\n' && lx.peek() != eof {
		lx.next()
	}
	lx.ignore()
	return lexAny
}

// lexBlockComment scans to the closing "*/". A block comment left open
// runs to the end of the input and is discarded like any other comment.
func lexBlockComment(lx *Lexer) lexState {
	for {
		r := lx.next()
		if r == eof {
			lx.ignore()
			return lexAny
		}
		if r == '*' && lx.peek() == '/' {
			lx.next()
			lx.ignore()
			return lexAny
		}
	}
}

func lexWhitespace(lx *Lexer) lexState {
	for unicode.IsSpace(lx.peek()) {
		lx.next()
	}
	lx.ignore()
	return lexAny
}

func lexSymbol(lx *Lexer) lexState {
	for {
		r := lx.peek()
		if r == eof || isBreak(r) || unicode.IsControl(r) {
			break
		}
		lx.next()
	}
	if IsNumber(lx.src[lx.startOff:lx.off]) {
		lx.emit(TokenNumber)
		return lexAny
	}
	lx.emit(TokenSymbol)
	return lexAny
}

// Tokenize scans the given source text and returns all the tokens within
// it, or the first lexical error.
func Tokenize(src string) ([]Token, error) {
	lx := New(src)
	if err := lx.Run(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
