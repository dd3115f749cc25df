package main

import (
	"fmt"
	"log"

	"github.com/hql-lang/hql/ast"
	"github.com/hql-lang/hql/reader"
)

func main() {
	input := `
		(enum OS : Int
			(case macOS 1)
			(case linux 2))

		{user: "ada", langs: ["hql", "go"], tags: #[42]}

		(print "running on \(os.name)")
	`

	nodes, err := reader.Parse(input)
	if err != nil {
		log.Fatal("reader.Parse:", err)
	}

	for _, node := range nodes {
		fmt.Println(node.String())
		fmt.Print(ast.Dump(node))
		fmt.Println()
	}
}
