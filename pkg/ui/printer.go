// Package ui writes rendered report lines and short status messages to a
// terminal or to plain text outputs.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/unitool/pkg/render"
	"github.com/arthur-debert/unitool/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes display lines to an output in a fixed format
type Printer struct {
	w        io.Writer
	format   Format
	table    *styles.Table
	renderer *lipgloss.Renderer
}

// NewPrinter creates a printer for w. FormatAuto is resolved against w when
// it is a file and falls back to plain text otherwise. An explicit
// FormatTerminal forces a truecolor profile. A nil table uses styles.Default().
func NewPrinter(w io.Writer, format Format, table *styles.Table) *Printer {
	if table == nil {
		table = styles.Default()
	}

	forced := format == FormatTerminal
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	p := &Printer{w: w, format: format, table: table}
	if format == FormatTerminal {
		p.renderer = lipgloss.NewRenderer(w)
		if forced {
			p.renderer.SetColorProfile(termenv.TrueColor)
		}
	}
	return p
}

// Format returns the resolved output format, never FormatAuto
func (p *Printer) Format() Format {
	return p.format
}

// Line returns the line as it would be printed, without the newline
func (p *Printer) Line(l render.Line) string {
	if p.format != FormatTerminal || len(l.Spans) == 0 {
		return l.Text
	}
	var sb strings.Builder
	for _, seg := range l.Segments() {
		if seg.Style == "" || !p.table.Has(seg.Style) {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteString(p.table.Style(p.renderer, seg.Style).Render(seg.Text))
	}
	return sb.String()
}

// PrintLines writes each line followed by a newline
func (p *Printer) PrintLines(lines []render.Line) error {
	for _, l := range lines {
		if _, err := io.WriteString(p.w, p.Line(l)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Message writes a single line of text in the named style
func (p *Printer) Message(style styles.Name, text string) error {
	l := render.Line{Text: text}
	if text != "" {
		l.Spans = []render.Span{{Start: 0, End: len(text), Style: style}}
	}
	return p.PrintLines([]render.Line{l})
}

// Messagef formats according to a format specifier and writes the result
// in the named style
func (p *Printer) Messagef(style styles.Name, format string, args ...interface{}) error {
	return p.Message(style, fmt.Sprintf(format, args...))
}
