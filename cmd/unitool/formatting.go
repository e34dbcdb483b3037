package unitool

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/unitool/pkg/ui"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// emphasize makes s bold when stdout shows colors and styling was not
// turned off with --color=never
func emphasize(s string) string {
	if !pterm.PrintColor || ui.DetectFormat(os.Stdout) != ui.FormatTerminal {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// heading formats a usage section title
func heading(s string) string {
	return emphasize(strings.ToUpper(s))
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      emphasize,
		"boldUpper": heading,
	})
}
