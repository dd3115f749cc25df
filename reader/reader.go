package reader

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hql-lang/hql/ast"
	"github.com/hql-lang/hql/lexer"
	"github.com/hql-lang/hql/source"
)

// Options control how the reader reacts to malformed input.
type Options struct {
	// Tolerant keeps the reader going after an error: unterminated
	// collections are closed at end of input, anything else is recorded
	// and skipped up to the next top-level form. Parse then returns every
	// form it could build and Errors reports what went wrong.
	Tolerant bool
}

// Reader turns HQL source text into a sequence of syntax trees. It owns
// the token stream produced by the lexer and performs the reader-level
// rewrites: collection desugaring, quotation, string interpolation,
// dotted access and enum type shorthand.
type Reader struct {
	src  string
	opts Options

	// start rebases positions when the source is an interpolation
	// fragment cut out of an enclosing document.
	start source.Position

	toks []lexer.Token
	i    int

	// depth counts currently open delimiters so that error recovery can
	// skip to the next top-level form instead of resyncing mid-list.
	depth int

	errs []*source.SyntaxError
}

// New initializes a Reader for the given source text with default
// (strict) options.
func New(src string) *Reader {
	return &Reader{src: src}
}

// SetOptions changes the reader options. It must be called before Parse.
func (r *Reader) SetOptions(opts Options) {
	r.opts = opts
}

// Parse reads every top-level form in the source. In strict mode it
// stops at the first error. In tolerant mode it always returns the
// forms it could build; consult Errors for diagnostics.
func (r *Reader) Parse() ([]*ast.Node, error) {
	nodes, serr := r.parse()
	if serr != nil {
		return nil, serr
	}
	return nodes, nil
}

func (r *Reader) parse() ([]*ast.Node, *source.SyntaxError) {
	r.i = 0
	r.depth = 0
	r.errs = nil

	lx := lexer.New(r.src)
	lx.SetOptions(lexer.Options{Tolerant: r.opts.Tolerant, Start: r.start})
	var lexErr *source.SyntaxError
	if err := lx.Run(); errors.As(err, &lexErr) {
		return nil, lexErr
	}
	for _, lerr := range lx.Errors() {
		r.record(lerr)
	}
	r.toks = lx.Tokens()

	var nodes []*ast.Node
	for {
		if r.peek().Is(lexer.TokenEOF) {
			return nodes, nil
		}
		node, serr := r.parseExpr()
		if serr != nil {
			if !r.opts.Tolerant {
				return nil, serr
			}
			r.record(serr)
			r.resync()
			continue
		}
		nodes = append(nodes, node)
	}
}

func (r *Reader) peek() lexer.Token {
	return r.toks[r.i]
}

// next consumes and returns the current token. The EOF token is never
// consumed, so callers may call next at end of input any number of times.
func (r *Reader) next() lexer.Token {
	tok := r.toks[r.i]
	if !tok.Is(lexer.TokenEOF) {
		r.i++
	}
	return tok
}

// skipCommas drops separator commas. Commas separate elements only
// inside vector, map and set literals; anywhere else a comma reads as a
// literal "," symbol.
func (r *Reader) skipCommas() {
	for r.peek().Is(lexer.TokenComma) {
		r.next()
	}
}

// resync drops tokens until the delimiter depth returns to zero, leaving
// the reader at the start of the next top-level form.
func (r *Reader) resync() {
	for r.depth > 0 {
		switch r.next().Type() {
		case lexer.TokenEOF:
			r.depth = 0
			return
		case lexer.TokenOpenParen, lexer.TokenOpenBracket, lexer.TokenOpenBrace, lexer.TokenOpenSet:
			r.depth++
		case lexer.TokenCloseParen, lexer.TokenCloseBracket, lexer.TokenCloseBrace:
			r.depth--
		}
	}
}

func (r *Reader) parseExpr() (*ast.Node, *source.SyntaxError) {
	switch tok := r.next(); tok.Type() {
	case lexer.TokenOpenParen:
		return r.parseList(tok)
	case lexer.TokenOpenBracket:
		return r.parseVector(tok)
	case lexer.TokenOpenBrace:
		return r.parseMap(tok)
	case lexer.TokenOpenSet:
		return r.parseSet(tok)
	case lexer.TokenQuote:
		return r.parseQuoted(tok, "quote")
	case lexer.TokenQuasiquote:
		return r.parseQuoted(tok, "quasiquote")
	case lexer.TokenUnquote:
		return r.parseQuoted(tok, "unquote")
	case lexer.TokenUnquoteSplicing:
		return r.parseQuoted(tok, "unquote-splicing")
	case lexer.TokenString:
		return r.parseString(tok)
	case lexer.TokenNumber:
		v, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			return nil, r.errorf(tok.Start(), "Malformed number")
		}
		return ast.NewNumber(tok.Span(), v), nil
	case lexer.TokenSymbol:
		return r.parseSymbol(tok), nil
	case lexer.TokenDot:
		return r.parseDotAccess(tok)
	case lexer.TokenComma:
		return ast.NewSymbol(tok.Span(), ","), nil
	case lexer.TokenEOF:
		return nil, r.errorf(tok.Start(), "Unexpected end of input")
	default:
		// Stray closers and colons land here.
		return nil, r.errorf(tok.Start(), "Unexpected '%s'", tok.Text())
	}
}

// newForm builds a call-shaped list whose head is a synthetic symbol.
// Nodes introduced by desugaring carry no span of their own.
func newForm(span source.Span, name string, elems ...*ast.Node) *ast.Node {
	kids := make([]*ast.Node, 0, len(elems)+1)
	kids = append(kids, ast.NewSymbol(source.Span{}, name))
	kids = append(kids, elems...)
	return ast.NewList(span, kids...)
}

func (r *Reader) parseList(open lexer.Token) (*ast.Node, *source.SyntaxError) {
	r.depth++

	var kids []*ast.Node
	enumTyped := false

	for {
		switch tok := r.peek(); tok.Type() {
		case lexer.TokenCloseParen:
			end := r.next()
			r.depth--
			return ast.NewList(source.Span{Start: open.Start(), End: end.End()}, kids...), nil

		case lexer.TokenEOF:
			serr := r.errorf(open.Start(), "Unclosed list")
			if !r.opts.Tolerant {
				return nil, serr
			}
			r.record(serr)
			r.depth--
			return ast.NewList(source.Span{Start: open.Start(), End: tok.End()}, kids...), nil

		case lexer.TokenColon:
			// (enum Name : Type ...) folds the type into the name.
			if !enumTyped && len(kids) == 2 && kids[0].IsSymbol("enum") && kids[1].Type() == ast.NodeTypeSymbol {
				r.next()
				typed, serr := r.withTypeName(kids[1])
				if serr != nil {
					return nil, serr
				}
				kids[1] = typed
				enumTyped = true
				continue
			}
		}

		// In a fn or fx head, a bracket right after "->" is an array
		// return type, not a vector literal.
		if len(kids) >= 2 && (kids[0].IsSymbol("fn") || kids[0].IsSymbol("fx")) &&
			kids[len(kids)-1].IsSymbol("->") && r.peek().Is(lexer.TokenOpenBracket) {
			arr, serr := r.parseArrayType(r.next())
			if serr != nil {
				return nil, serr
			}
			kids = append(kids, arr)
			continue
		}

		kid, serr := r.parseExpr()
		if serr != nil {
			return nil, serr
		}
		kids = append(kids, kid)
	}
}

// withTypeName rewrites an enum name to "Name:Type" once the colon has
// been consumed. The rewritten symbol spans the name through the type.
func (r *Reader) withTypeName(name *ast.Node) (*ast.Node, *source.SyntaxError) {
	tok := r.peek()
	if !tok.Is(lexer.TokenSymbol) {
		return nil, r.errorf(tok.Start(), "Expected type name after colon")
	}
	r.next()
	span := source.Span{Start: name.Span().Start, End: tok.End()}
	return ast.NewSymbol(span, name.Name()+":"+tok.Text()), nil
}

func (r *Reader) parseVector(open lexer.Token) (*ast.Node, *source.SyntaxError) {
	r.depth++

	var elems []*ast.Node
	for {
		r.skipCommas()

		switch tok := r.peek(); tok.Type() {
		case lexer.TokenCloseBracket:
			end := r.next()
			r.depth--
			return finishVector(open, end.End(), elems), nil

		case lexer.TokenEOF:
			serr := r.errorf(open.Start(), "Unclosed vector")
			if !r.opts.Tolerant {
				return nil, serr
			}
			r.record(serr)
			r.depth--
			return finishVector(open, tok.End(), elems), nil
		}

		elem, serr := r.parseExpr()
		if serr != nil {
			return nil, serr
		}
		elems = append(elems, elem)
	}
}

func finishVector(open lexer.Token, end source.Position, elems []*ast.Node) *ast.Node {
	span := source.Span{Start: open.Start(), End: end}
	if len(elems) == 0 {
		return newForm(span, "empty-array")
	}
	return newForm(span, "vector", elems...)
}

func (r *Reader) parseSet(open lexer.Token) (*ast.Node, *source.SyntaxError) {
	r.depth++

	var elems []*ast.Node
	for {
		r.skipCommas()

		switch tok := r.peek(); tok.Type() {
		case lexer.TokenCloseBracket:
			end := r.next()
			r.depth--
			return finishSet(open, end.End(), elems), nil

		case lexer.TokenEOF:
			serr := r.errorf(open.Start(), "Unclosed set")
			if !r.opts.Tolerant {
				return nil, serr
			}
			r.record(serr)
			r.depth--
			return finishSet(open, tok.End(), elems), nil
		}

		elem, serr := r.parseExpr()
		if serr != nil {
			return nil, serr
		}
		elems = append(elems, elem)
	}
}

func finishSet(open lexer.Token, end source.Position, elems []*ast.Node) *ast.Node {
	span := source.Span{Start: open.Start(), End: end}
	if len(elems) == 0 {
		return newForm(span, "empty-set")
	}
	return newForm(span, "hash-set", elems...)
}

func (r *Reader) parseMap(open lexer.Token) (*ast.Node, *source.SyntaxError) {
	r.depth++

	var pairs []*ast.Node
	for {
		r.skipCommas()

		switch tok := r.peek(); tok.Type() {
		case lexer.TokenCloseBrace:
			end := r.next()
			r.depth--
			return finishMap(open, end.End(), pairs), nil

		case lexer.TokenEOF:
			serr := r.errorf(open.Start(), "Unclosed map")
			if !r.opts.Tolerant {
				return nil, serr
			}
			r.record(serr)
			r.depth--
			return finishMap(open, tok.End(), pairs), nil
		}

		key, serr := r.parseExpr()
		if serr != nil {
			return nil, serr
		}

		switch tok := r.peek(); tok.Type() {
		case lexer.TokenColon:
			r.next()

		case lexer.TokenEOF:
			serr := r.errorf(open.Start(), "Unclosed map")
			if !r.opts.Tolerant {
				return nil, serr
			}
			r.record(serr)
			r.depth--
			return finishMap(open, tok.End(), append(pairs, key)), nil

		default:
			return nil, r.errorf(tok.Start(), "Expected ':' in map literal")
		}

		r.skipCommas()
		if tok := r.peek(); tok.Is(lexer.TokenEOF) {
			serr := r.errorf(open.Start(), "Unclosed map")
			if !r.opts.Tolerant {
				return nil, serr
			}
			r.record(serr)
			r.depth--
			return finishMap(open, tok.End(), append(pairs, key)), nil
		}

		value, serr := r.parseExpr()
		if serr != nil {
			return nil, serr
		}

		pairs = append(pairs, key, value)
	}
}

func finishMap(open lexer.Token, end source.Position, pairs []*ast.Node) *ast.Node {
	span := source.Span{Start: open.Start(), End: end}
	if len(pairs) == 0 {
		return newForm(span, "empty-map")
	}
	return newForm(span, "hash-map", pairs...)
}

// parseArrayType reads the bracketed element type of an array return
// annotation. Nested brackets describe arrays of arrays; the result is a
// one-element list holding the element type.
func (r *Reader) parseArrayType(open lexer.Token) (*ast.Node, *source.SyntaxError) {
	r.depth++

	var inner *ast.Node
	switch tok := r.peek(); tok.Type() {
	case lexer.TokenEOF:
		serr := r.errorf(open.Start(), "Unclosed array type notation")
		if !r.opts.Tolerant {
			return nil, serr
		}
		r.record(serr)
		r.depth--
		return ast.NewList(source.Span{Start: open.Start(), End: tok.End()}), nil

	case lexer.TokenOpenBracket:
		node, serr := r.parseArrayType(r.next())
		if serr != nil {
			return nil, serr
		}
		inner = node

	default:
		node, serr := r.parseExpr()
		if serr != nil {
			return nil, serr
		}
		inner = node
	}

	switch tok := r.peek(); tok.Type() {
	case lexer.TokenCloseBracket:
		end := r.next()
		r.depth--
		return ast.NewList(source.Span{Start: open.Start(), End: end.End()}, inner), nil

	case lexer.TokenEOF:
		serr := r.errorf(open.Start(), "Unclosed array type notation")
		if !r.opts.Tolerant {
			return nil, serr
		}
		r.record(serr)
		r.depth--
		return ast.NewList(source.Span{Start: open.Start(), End: tok.End()}, inner), nil

	default:
		return nil, r.errorf(tok.Start(), "Missing closing bracket in array type notation")
	}
}

// parseQuoted wraps the next expression in a (name expr) form. The span
// runs from the quote mark through the quoted expression.
func (r *Reader) parseQuoted(mark lexer.Token, name string) (*ast.Node, *source.SyntaxError) {
	expr, serr := r.parseExpr()
	if serr != nil {
		return nil, serr
	}
	return newForm(source.Span{Start: mark.Start(), End: expr.Span().End}, name, expr), nil
}

// parseDotAccess reads the ".name" enum-case shorthand. The name must
// follow the dot with no space in between.
func (r *Reader) parseDotAccess(dot lexer.Token) (*ast.Node, *source.SyntaxError) {
	tok := r.peek()
	if tok.Is(lexer.TokenSymbol) && tok.Start().Offset == dot.End().Offset {
		r.next()
		return ast.NewSymbol(source.Span{Start: dot.Start(), End: tok.End()}, "."+tok.Text()), nil
	}
	return nil, r.errorf(dot.Start(), "Expected property name after '.'")
}

// parseSymbol maps the literal keywords and rewrites dotted paths into
// property lookups: "a.b.c" becomes (get a "b.c"). Leading and trailing
// dots do not split, and neither does a numeric head, so "1.2.3" stays
// one opaque symbol.
func (r *Reader) parseSymbol(tok lexer.Token) *ast.Node {
	text := tok.Text()

	switch text {
	case "nil":
		return ast.NewNil(tok.Span())
	case "true":
		return ast.NewBool(tok.Span(), true)
	case "false":
		return ast.NewBool(tok.Span(), false)
	}

	if i := strings.IndexByte(text, '.'); i > 0 && i < len(text)-1 {
		head, rest := text[:i], text[i+1:]
		if !lexer.IsNumber(head) {
			headEnd := tok.Start().AdvanceString(head)
			headNode := ast.NewSymbol(source.Span{Start: tok.Start(), End: headEnd}, head)
			restNode := ast.NewString(source.Span{Start: headEnd.Advance('.'), End: tok.End()}, rest)
			return newForm(tok.Span(), "get", headNode, restNode)
		}
	}

	return ast.NewSymbol(tok.Span(), text)
}

// Parse reads every top-level form in src, stopping at the first error.
func Parse(src string) ([]*ast.Node, error) {
	return New(src).Parse()
}

// ParseTolerant reads src in tolerant mode, returning every form that
// could be built along with the diagnostics collected on the way.
func ParseTolerant(src string) ([]*ast.Node, []*source.SyntaxError) {
	r := New(src)
	r.SetOptions(Options{Tolerant: true})
	nodes, _ := r.Parse()
	return nodes, r.Errors()
}
