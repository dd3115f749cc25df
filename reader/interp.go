package reader

import (
	"strings"
	"unicode/utf8"

	"github.com/hql-lang/hql/ast"
	"github.com/hql-lang/hql/lexer"
	"github.com/hql-lang/hql/source"
)

// parseString turns a string token into either a plain String node or,
// when the body contains a \( escape, the (str part expr part ...) form
// produced by interpolation.
func (r *Reader) parseString(tok lexer.Token) (*ast.Node, *source.SyntaxError) {
	if !hasInterpolation(tok.Text()) {
		return ast.NewString(tok.Span(), unescape(tok.Text())), nil
	}

	node, serr := r.parseInterpolation(tok)
	if serr != nil {
		if !r.opts.Tolerant {
			return nil, serr
		}
		// A broken interpolation reads as a plain string so that the
		// rest of the document still parses.
		r.record(serr)
		return ast.NewString(tok.Span(), unescape(tok.Text())), nil
	}
	return node, nil
}

// parseInterpolation splits the raw string body into literal chunks and
// embedded expressions, yielding (str ...). Literal chunks keep their
// exact source spans; empty chunks around interpolations are dropped.
func (r *Reader) parseInterpolation(tok lexer.Token) (*ast.Node, *source.SyntaxError) {
	raw := tok.Text()

	var parts []*ast.Node

	// pos tracks the source position of raw[i]; the body starts one byte
	// past the opening quote.
	pos := tok.Start().Advance('"')
	chunkStart := 0
	chunkPos := pos

	i := 0
	for i < len(raw) {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '(' {
			if i > chunkStart {
				parts = append(parts, ast.NewString(source.Span{Start: chunkPos, End: pos}, unescape(raw[chunkStart:i])))
			}

			exprStart := i + 2
			exprPos := pos.AdvanceString(raw[i:exprStart])
			end := closeParen(raw, exprStart)
			if end < 0 {
				return nil, r.errorf(pos, "Unclosed interpolation")
			}

			expr, serr := r.parseSub(raw[exprStart:end], exprPos)
			if serr != nil {
				return nil, serr
			}
			parts = append(parts, expr)

			pos = exprPos.AdvanceString(raw[exprStart : end+1])
			i = end + 1
			chunkStart = i
			chunkPos = pos
			continue
		}

		if raw[i] == '\\' && i+1 < len(raw) {
			pos = pos.AdvanceString(raw[i : i+2])
			i += 2
			continue
		}

		_, w := utf8.DecodeRuneInString(raw[i:])
		pos = pos.AdvanceString(raw[i : i+w])
		i += w
	}

	if len(raw) > chunkStart {
		parts = append(parts, ast.NewString(source.Span{Start: chunkPos, End: pos}, unescape(raw[chunkStart:])))
	}

	return newForm(tok.Span(), "str", parts...), nil
}

// parseSub parses the text between an interpolation's parentheses as
// exactly one expression. The fragment is parsed strictly even in
// tolerant mode; position reporting is rebased into the enclosing
// document. Escape pairs inside the fragment are resolved first, so
// spans within a fragment that contains \" or \\ shift by the collapsed
// escapes.
func (r *Reader) parseSub(fragment string, at source.Position) (*ast.Node, *source.SyntaxError) {
	sub := New(unescape(fragment))
	sub.start = at

	nodes, serr := sub.parse()
	if serr != nil {
		// The sub-reader sliced its excerpt from the fragment; take it
		// from the enclosing document instead.
		serr.Excerpt = source.LineAt(r.src, serr.Pos)
		return nil, serr
	}
	if len(nodes) != 1 {
		return nil, r.errorf(at, "Expected a single expression in string interpolation")
	}
	return nodes[0], nil
}

// hasInterpolation reports whether the raw string body contains an
// unescaped \( sequence.
func hasInterpolation(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '\\' {
			continue
		}
		if s[i+1] == '(' {
			return true
		}
		i++
	}
	return false
}

// closeParen returns the index of the parenthesis closing the
// interpolation whose body starts at from, or -1 if the string body ends
// first. Escape pairs are skipped, except that a nested \( opens one
// more level.
func closeParen(s string, from int) int {
	depth := 1
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				if s[i+1] == '(' {
					depth++
				}
				i++
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// unescape resolves the \" and \\ escape pairs. Any other backslash pair
// is left as written.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '"', '\\':
				b.WriteByte(s[i+1])
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
