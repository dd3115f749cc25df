package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hql-lang/hql/source"
)

func getTokenTypes(tokens []Token) []TokenType {
	tt := make([]TokenType, 0, len(tokens))
	for i := range tokens {
		tt = append(tt, tokens[i].tt)
	}
	return tt
}

func getTokenTexts(tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for i := range tokens {
		texts = append(texts, tokens[i].text)
	}
	return texts
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`1`,
			[]TokenType{
				TokenNumber,
				TokenEOF,
			},
		},
		{
			`-1.23`,
			[]TokenType{
				TokenNumber,
				TokenEOF,
			},
		},
		{
			`1.2.3`,
			[]TokenType{
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`(+ 1 2)`,
			[]TokenType{
				TokenOpenParen,
				TokenSymbol,
				TokenNumber,
				TokenNumber,
				TokenCloseParen,
				TokenEOF,
			},
		},
		{
			`[1, 2]`,
			[]TokenType{
				TokenOpenBracket,
				TokenNumber,
				TokenComma,
				TokenNumber,
				TokenCloseBracket,
				TokenEOF,
			},
		},
		{
			`{a: 1}`,
			[]TokenType{
				TokenOpenBrace,
				TokenSymbol,
				TokenColon,
				TokenNumber,
				TokenCloseBrace,
				TokenEOF,
			},
		},
		{
			`#[1 2]`,
			[]TokenType{
				TokenOpenSet,
				TokenNumber,
				TokenNumber,
				TokenCloseBracket,
				TokenEOF,
			},
		},
		{
			`#foo`,
			[]TokenType{
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`'x`,
			[]TokenType{
				TokenQuote,
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			"`x",
			[]TokenType{
				TokenQuasiquote,
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`~x`,
			[]TokenType{
				TokenUnquote,
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`~@x`,
			[]TokenType{
				TokenUnquoteSplicing,
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`~ @x`,
			[]TokenType{
				TokenUnquote,
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`obj.field`,
			[]TokenType{
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`(foo).bar`,
			[]TokenType{
				TokenOpenParen,
				TokenSymbol,
				TokenCloseParen,
				TokenDot,
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			"; a comment\n1",
			[]TokenType{
				TokenNumber,
				TokenEOF,
			},
		},
		{
			"// a comment\n1",
			[]TokenType{
				TokenNumber,
				TokenEOF,
			},
		},
		{
			"/* a\nmultiline\ncomment */ 1",
			[]TokenType{
				TokenNumber,
				TokenEOF,
			},
		},
		{
			`/* left open`,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`a/b`,
			[]TokenType{
				TokenSymbol,
				TokenEOF,
			},
		},
		{
			`/ 1`,
			[]TokenType{
				TokenSymbol,
				TokenNumber,
				TokenEOF,
			},
		},
		{
			`"hi"`,
			[]TokenType{
				TokenString,
				TokenEOF,
			},
		},
		{
			`"say \"hi\""`,
			[]TokenType{
				TokenString,
				TokenEOF,
			},
		},
		{
			`(fn f [x] -> [Int])`,
			[]TokenType{
				TokenOpenParen,
				TokenSymbol,
				TokenSymbol,
				TokenOpenBracket,
				TokenSymbol,
				TokenCloseBracket,
				TokenSymbol,
				TokenOpenBracket,
				TokenSymbol,
				TokenCloseBracket,
				TokenCloseParen,
				TokenEOF,
			},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.NoError(t, err, "case %d: %q", i, testCases[i].In)
		assert.NotNil(t, tokens)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "case %d: %q", i, testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			`{a: 1, b: 2}`,
			[]string{"{", "a", ":", "1", ",", "b", ":", "2", "}", ""},
		},
		{
			`#[ ~@ , .`,
			[]string{"#[", "~@", ",", ".", ""},
		},
		{
			`a.b .c`,
			[]string{"a.b", ".", "c", ""},
		},
		{
			`"hello \"w\""`,
			[]string{`hello \"w\"`, ""},
		},
		{
			`"" x`,
			[]string{"", "x", ""},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, getTokenTexts(tokens), "case %d: %q", i, testCases[i].In)
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 1},
			},
		},
		{
			"1",
			[][2]int{
				{1, 1}, {1, 2},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1},
				{3, 3}, {3, 8},
			},
		},
		{
			"(a\n b)",
			[][2]int{
				{1, 1}, {1, 2},
				{2, 2}, {2, 3}, {2, 4},
			},
		},
		{
			"; skip\nx",
			[][2]int{
				{2, 1}, {2, 2},
			},
		},
		{
			"😊 x",
			[][2]int{
				{1, 1}, {1, 3}, {1, 4},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].span.Start.Line, tokens[i].span.Start.Column})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens), "case %d: %q", i, testCases[i].In)
	}
}

func TestByteOffsets(t *testing.T) {
	testCases := []struct {
		In      string
		Offsets [][2]int
	}{
		{
			"😊 x",
			[][2]int{
				{0, 4}, {5, 6}, {6, 6},
			},
		},
		{
			"\"a\nb\" c",
			[][2]int{
				{0, 5}, {6, 7}, {7, 7},
			},
		},
		{
			"#[]",
			[][2]int{
				{0, 2}, {2, 3}, {3, 3},
			},
		},
	}

	getTokenOffsets := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].span.Start.Offset, tokens[i].span.End.Offset})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Offsets, getTokenOffsets(tokens), "case %d: %q", i, testCases[i].In)
	}
}

func TestMultilineStringPosition(t *testing.T) {
	tokens, err := Tokenize("\"a\nb\" c")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	str := tokens[0]
	assert.True(t, str.Is(TokenString))
	assert.Equal(t, "a\nb", str.Text())
	assert.Equal(t, source.Position{Line: 1, Column: 1, Offset: 0}, str.Start())
	assert.Equal(t, source.Position{Line: 2, Column: 3, Offset: 5}, str.End())

	assert.Equal(t, source.Position{Line: 2, Column: 4, Offset: 6}, tokens[1].Start())
}

func TestIsNumber(t *testing.T) {
	testCases := []struct {
		In  string
		Out bool
	}{
		{"1", true},
		{"123", true},
		{"1.", true},
		{"1.5", true},
		{"+2", true},
		{"-1.23", true},
		{"+", false},
		{"-", false},
		{"", false},
		{".5", false},
		{"1.2.3", false},
		{"1e5", false},
		{"123abc", false},
		{"-a", false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, IsNumber(testCases[i].In), "case %d: %q", i, testCases[i].In)
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens, err := Tokenize(`("abc`)
	assert.Nil(t, tokens)
	assert.Error(t, err)

	serr, ok := err.(*source.SyntaxError)
	require.True(t, ok)
	assert.Equal(t, "Unterminated string", serr.Msg)
	assert.Equal(t, source.Position{Line: 1, Column: 2, Offset: 1}, serr.Pos)
}

func TestUnexpectedCharacter(t *testing.T) {
	tokens, err := Tokenize("a \x01 b")
	assert.Nil(t, tokens)
	assert.Error(t, err)

	serr, ok := err.(*source.SyntaxError)
	require.True(t, ok)
	assert.Equal(t, "Unexpected character", serr.Msg)
	assert.Equal(t, source.Position{Line: 1, Column: 3, Offset: 2}, serr.Pos)
}

func TestTolerantUnterminatedString(t *testing.T) {
	lx := New(`"abc`)
	lx.SetOptions(Options{Tolerant: true})

	err := lx.Run()
	assert.NoError(t, err)

	tokens := lx.Tokens()
	require.Len(t, tokens, 2)
	assert.True(t, tokens[0].Is(TokenString))
	assert.Equal(t, "abc", tokens[0].Text())

	errs := lx.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "Unterminated string", errs[0].Msg)
}

func TestTolerantUnexpectedCharacter(t *testing.T) {
	lx := New("a \x01 b")
	lx.SetOptions(Options{Tolerant: true})

	err := lx.Run()
	assert.NoError(t, err)

	assert.Equal(t, []TokenType{TokenSymbol, TokenSymbol, TokenEOF}, getTokenTypes(lx.Tokens()))
	assert.Equal(t, []string{"a", "b", ""}, getTokenTexts(lx.Tokens()))

	errs := lx.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "Unexpected character", errs[0].Msg)
}

func TestStartRebase(t *testing.T) {
	lx := New("foo")
	lx.SetOptions(Options{Start: source.Position{Line: 3, Column: 5, Offset: 20}})

	err := lx.Run()
	require.NoError(t, err)

	tokens := lx.Tokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, source.Position{Line: 3, Column: 5, Offset: 20}, tokens[0].Start())
	assert.Equal(t, source.Position{Line: 3, Column: 8, Offset: 23}, tokens[0].End())
}
