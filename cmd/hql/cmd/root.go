package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hql",
	Short: "HQL parser tooling",
	Long: `hql turns HQL source text into span-annotated syntax trees.

Commands:
  parse    - read source and print the parsed forms
  lex      - scan source and print the token stream
  version  - show version information`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// getInputSource resolves the source text for a command: piped stdin
// wins, then a file named by the first argument, then the arguments
// themselves taken as literal source.
func getInputSource(args []string) (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
		return strings.Join(args, " "), nil
	}

	return "", errors.New("no input: pass a file, source text or pipe to stdin")
}
