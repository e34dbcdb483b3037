package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a Printer writes lines
type Format int

const (
	// FormatAuto resolves to FormatTerminal or FormatText for the output
	FormatAuto Format = iota
	// FormatTerminal writes ANSI styled text
	FormatTerminal
	// FormatText writes the plain text of every line
	FormatText
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
}

// formatAliases maps every accepted spelling, including the --color values
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"always":   FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"never":    FormatText,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat parses a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(s)]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s)
}

// DetectFormat resolves FormatAuto for f. Styling is off when NO_COLOR is
// set (or CLICOLOR=0), when f is not a terminal and when the terminal
// supports no colors.
func DetectFormat(f *os.File) Format {
	out := termenv.NewOutput(f)
	if out.EnvNoColor() {
		return FormatText
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}
	if out.EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
