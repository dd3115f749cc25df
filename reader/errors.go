package reader

import (
	"sort"

	"github.com/hql-lang/hql/source"
)

func (r *Reader) errorf(pos source.Position, format string, args ...interface{}) *source.SyntaxError {
	return source.Errorf(r.src, pos, format, args...)
}

func (r *Reader) record(err *source.SyntaxError) {
	r.errs = append(r.errs, err)
}

// Errors returns every diagnostic recorded during a tolerant parse,
// lexical and structural alike, ordered by source position.
func (r *Reader) Errors() []*source.SyntaxError {
	sort.SliceStable(r.errs, func(i, j int) bool {
		return r.errs[i].Pos.Offset < r.errs[j].Pos.Offset
	})
	return r.errs
}
