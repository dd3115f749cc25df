package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hql-lang/hql/lexer"
	"github.com/hql-lang/hql/source"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file|source]",
	Short: "Scan HQL source and print the token stream",
	Long: `Scans HQL source text and prints one token per line with its
source span.

Examples:
  hql lex program.hql
  hql lex '(enum OS : Int)'
  echo '"a\(b)c"' | hql lex`,
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := getInputSource(args)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(src)
	if err != nil {
		var serr *source.SyntaxError
		if errors.As(err, &serr) {
			printDiagnostic(serr)
			return errors.New("lex failed")
		}
		return err
	}

	for _, tok := range toks {
		fmt.Printf("%s %s %q\n",
			spanStyle.Render(fmt.Sprintf("%-14v", tok.Span())),
			tokenStyle.Render(fmt.Sprintf("%-16v", tok.Type())),
			tok.Text())
	}

	return nil
}
