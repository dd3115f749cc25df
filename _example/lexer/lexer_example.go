package main

import (
	"fmt"
	"log"

	"github.com/hql-lang/hql/lexer"
)

func main() {
	input := `
		(fn greet [name] -> String ; one parameter
			"hello \(name)!")
	`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, span: %v)\n\t-> %q\n\n", i, tok.Type(), tok.Span(), tok.Text())
	}
}
