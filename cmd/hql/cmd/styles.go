package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hql-lang/hql/source"
)

// Colors
var (
	colorError = lipgloss.Color("#EF4444")
	colorCaret = lipgloss.Color("#F59E0B")
	colorMuted = lipgloss.Color("#6B7280")
	colorToken = lipgloss.Color("#7C3AED")
)

// Styles
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	excerptStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Foreground(colorCaret).
			Bold(true)

	spanStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	tokenStyle = lipgloss.NewStyle().
			Foreground(colorToken)
)

// printDiagnostic renders a syntax error on stderr as a caret diagnostic,
// one styled line each for the message, the source line and the caret.
func printDiagnostic(serr *source.SyntaxError) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(serr.Error()))
	if serr.Excerpt == "" {
		return
	}

	pad := serr.Pos.Column - 1
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(os.Stderr, excerptStyle.Render("  "+serr.Excerpt))
	fmt.Fprintln(os.Stderr, caretStyle.Render("  "+strings.Repeat(" ", pad)+"^"))
}
