// Package hql parses HQL source text into span-annotated syntax trees.
//
// The work happens in the subpackages: lexer scans text into tokens,
// reader builds ast nodes from them and applies the surface-syntax
// rewrites (collection literals, quoting, string interpolation, dotted
// access). This package re-exports the common entry points.
package hql

import (
	"github.com/hql-lang/hql/ast"
	"github.com/hql-lang/hql/lexer"
	"github.com/hql-lang/hql/reader"
	"github.com/hql-lang/hql/source"
)

// Parse reads every top-level form in src, stopping at the first syntax
// error.
func Parse(src string) ([]*ast.Node, error) {
	return reader.Parse(src)
}

// ParseTolerant reads src in tolerant mode: it returns every form that
// could be built together with the diagnostics collected on the way.
func ParseTolerant(src string) ([]*ast.Node, []*source.SyntaxError) {
	return reader.ParseTolerant(src)
}

// Tokenize scans src and returns its tokens without building a tree.
func Tokenize(src string) ([]lexer.Token, error) {
	return lexer.Tokenize(src)
}
