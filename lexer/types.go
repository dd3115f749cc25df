package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenParen                 // Open parenthesis: "("
	TokenCloseParen                // Close parenthesis: ")"
	TokenOpenBracket               // Open square bracket: "["
	TokenCloseBracket              // Close square bracket: "]"
	TokenOpenBrace                 // Open curly brace: "{"
	TokenCloseBrace                // Close curly brace: "}"
	TokenOpenSet                   // Set literal opener: "#["
	TokenString                    // Double-quoted literal, text holds the content between the quotes
	TokenNumber                    // Numeric literal
	TokenSymbol                    // Maximal run of non-structural characters
	TokenQuote                     // Quote: "'"
	TokenQuasiquote                // Quasiquote: "`"
	TokenUnquote                   // Unquote: "~"
	TokenUnquoteSplicing           // Unquote-splicing: "~@"
	TokenDot                       // Dot: "."
	TokenColon                     // Colon: ":"
	TokenComma                     // Comma: ","
	TokenEOF                       // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenParen:       "open_paren",
	TokenCloseParen:      "close_paren",
	TokenOpenBracket:     "open_bracket",
	TokenCloseBracket:    "close_bracket",
	TokenOpenBrace:       "open_brace",
	TokenCloseBrace:      "close_brace",
	TokenOpenSet:         "open_set",
	TokenString:          "string",
	TokenNumber:          "number",
	TokenSymbol:          "symbol",
	TokenQuote:           "quote",
	TokenQuasiquote:      "quasiquote",
	TokenUnquote:         "unquote",
	TokenUnquoteSplicing: "unquote_splicing",
	TokenDot:             "dot",
	TokenColon:           "colon",
	TokenComma:           "comma",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// isBreak reports whether r ends a symbol run. Whitespace and the
// structural characters break runs; "." does not, so dotted-path symbols
// stay single tokens.
func isBreak(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '(', ')', '[', ']', '{', '}', '"', '\'', '`', ';', ',', ':':
		return true
	}
	return false
}

// IsNumber reports whether a symbol run is a numeric literal: an optional
// sign, one or more digits, an optional single decimal point and optional
// fraction digits. Anything else, "1.2.3" or "1e5" included, stays a
// symbol.
func IsNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	return i == len(s)
}
