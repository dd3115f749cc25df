package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hql-lang/hql/ast"
	"github.com/hql-lang/hql/reader"
	"github.com/hql-lang/hql/source"
)

var (
	parseTolerant bool
	parseDump     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|source]",
	Short: "Parse HQL source and print the forms",
	Long: `Parses HQL source text and prints each top-level form in its
canonical list notation.

Examples:
  hql parse program.hql
  hql parse '(+ 1 2)'
  echo '[1, 2, 3]' | hql parse
  hql parse --dump program.hql
  hql parse --tolerant broken.hql`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseTolerant, "tolerant", "t", false, "keep going after errors and report them all")
	parseCmd.Flags().BoolVar(&parseDump, "dump", false, "print the tree structure with spans instead of canonical notation")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := getInputSource(args)
	if err != nil {
		return err
	}

	r := reader.New(src)
	r.SetOptions(reader.Options{Tolerant: parseTolerant})

	nodes, err := r.Parse()
	if err != nil {
		var serr *source.SyntaxError
		if errors.As(err, &serr) {
			printDiagnostic(serr)
			return errors.New("parse failed")
		}
		return err
	}

	for _, node := range nodes {
		if parseDump {
			fmt.Print(ast.Dump(node))
		} else {
			fmt.Println(node.String())
		}
	}

	if errs := r.Errors(); len(errs) > 0 {
		for _, serr := range errs {
			printDiagnostic(serr)
		}
		if len(errs) == 1 {
			return errors.New("1 syntax error")
		}
		return fmt.Errorf("%d syntax errors", len(errs))
	}

	return nil
}
