package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoCloseOnEOF(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `(`,
			Out: `()`,
		},
		{
			In:  `(1`,
			Out: `(1)`,
		},
		{
			In:  `(((`,
			Out: `((()))`,
		},
		{
			In:  `(((1 1 1`,
			Out: `(((1 1 1)))`,
		},
		{
			In:  `(a [1 2`,
			Out: `(a (vector 1 2))`,
		},
		{
			In:  `[`,
			Out: `(empty-array)`,
		},
		{
			In:  `{`,
			Out: `(empty-map)`,
		},
		{
			In:  `#[`,
			Out: `(empty-set)`,
		},
		{
			In:  `{a: 1`,
			Out: `(hash-map a 1)`,
		},
		{
			In:  `{a: 1, b: 2`,
			Out: `(hash-map a 1 b 2)`,
		},
		{
			In:  `{a`,
			Out: `(hash-map a)`,
		},
		{
			In:  `{a:`,
			Out: `(hash-map a)`,
		},
		{
			In:  `(fn f [] -> [Int`,
			Out: `(fn f (empty-array) -> (Int))`,
		},
		{
			In:  `(fn f [] -> [[Int`,
			Out: `(fn f (empty-array) -> ((Int)))`,
		},
		{
			In:  `(a "unterminated`,
			Out: `(a "unterminated")`,
		},
		{
			In: `(1 2 3 4
			(5 6 7 8
			(4 6
		`,
			Out: `(1 2 3 4 (5 6 7 8 (4 6)))`,
		},
		{
			In:  "(keep ; a comment",
			Out: `(keep)`,
		},
	}

	for i := range testCases {
		{
			_, err := Parse(testCases[i].In)
			assert.Error(t, err, testCases[i].In)
		}

		{
			r := New(testCases[i].In)
			r.SetOptions(Options{Tolerant: true})

			nodes, err := r.Parse()
			assert.NoError(t, err, testCases[i].In)
			assert.Equal(t, testCases[i].Out, stringify(nodes), testCases[i].In)
			assert.NotEmpty(t, r.Errors(), testCases[i].In)
		}
	}
}

func TestTolerantResync(t *testing.T) {
	testCases := []struct {
		In   string
		Out  string
		Errs []string
	}{
		{
			In:   `(a)) (b)`,
			Out:  `(a) (b)`,
			Errs: []string{"Unexpected ')'"},
		},
		{
			In:   `(a ] b) (c)`,
			Out:  `(c)`,
			Errs: []string{"Unexpected ']'"},
		},
		{
			In:   `{a 1} (ok)`,
			Out:  `(ok)`,
			Errs: []string{"Expected ':' in map literal"},
		},
		{
			In:   `(x . ) (y)`,
			Out:  `(y)`,
			Errs: []string{"Expected property name after '.'"},
		},
		{
			In:   `(enum X : 1) (y)`,
			Out:  `(y)`,
			Errs: []string{"Expected type name after colon"},
		},
		{
			In:   `: (z)`,
			Out:  `(z)`,
			Errs: []string{"Unexpected ':'"},
		},
		{
			In:   `(a (b ] c) d) (e)`,
			Out:  `(e)`,
			Errs: []string{"Unexpected ']'"},
		},
	}

	for i := range testCases {
		nodes, errs := ParseTolerant(testCases[i].In)
		assert.Equal(t, testCases[i].Out, stringify(nodes), testCases[i].In)

		require.Len(t, errs, len(testCases[i].Errs), testCases[i].In)
		for j := range errs {
			assert.Equal(t, testCases[i].Errs[j], errs[j].Msg, testCases[i].In)
		}
	}
}

func TestTolerantErrorsSorted(t *testing.T) {
	nodes, errs := ParseTolerant("] } (x")
	assert.Equal(t, `(x)`, stringify(nodes))

	require.Len(t, errs, 3)
	assert.Equal(t, "Unexpected ']'", errs[0].Msg)
	assert.Equal(t, 0, errs[0].Pos.Offset)
	assert.Equal(t, "Unexpected '}'", errs[1].Msg)
	assert.Equal(t, 2, errs[1].Pos.Offset)
	assert.Equal(t, "Unclosed list", errs[2].Msg)
	assert.Equal(t, 4, errs[2].Pos.Offset)
}

func TestTolerantLexicalErrors(t *testing.T) {
	// A control character is skipped and the rest of the form survives.
	nodes, errs := ParseTolerant("(a \x01 b)")
	assert.Equal(t, `(a b)`, stringify(nodes))

	require.Len(t, errs, 1)
	assert.Equal(t, "Unexpected character", errs[0].Msg)
	assert.Equal(t, 3, errs[0].Pos.Offset)
}

func TestTolerantNestedUnclosed(t *testing.T) {
	nodes, errs := ParseTolerant("(a (b")
	assert.Equal(t, `(a (b))`, stringify(nodes))

	require.Len(t, errs, 2)
	assert.Equal(t, "Unclosed list", errs[0].Msg)
	assert.Equal(t, 0, errs[0].Pos.Offset)
	assert.Equal(t, "Unclosed list", errs[1].Msg)
	assert.Equal(t, 3, errs[1].Pos.Offset)
}

func TestTolerantValidInputNoErrors(t *testing.T) {
	nodes, errs := ParseTolerant(`(a [1 2] {k: v}) 'x`)
	assert.Equal(t, `(a (vector 1 2) (hash-map k v)) (quote x)`, stringify(nodes))
	assert.Empty(t, errs)
}
