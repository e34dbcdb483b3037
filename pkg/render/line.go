package render

import (
	"strings"

	"github.com/arthur-debert/unitool/pkg/ui/styles"
)

// Span applies a style to Text[Start:End] of a Line. Offsets are bytes.
type Span struct {
	Start int
	End   int
	Style styles.Name
}

// Line is one display line: plain text plus the styled ranges within it.
// Spans are ordered and never overlap.
type Line struct {
	Text  string
	Spans []Span
}

// Blank reports whether the line is an empty separator line
func (l Line) Blank() bool {
	return l.Text == ""
}

// Segment is a run of text sharing one style. An empty Style means unstyled.
type Segment struct {
	Text  string
	Style styles.Name
}

// Segments splits the line into consecutive runs, filling the gaps between
// spans with unstyled segments
func (l Line) Segments() []Segment {
	var segs []Segment
	pos := 0
	for _, sp := range l.Spans {
		if sp.Start > pos {
			segs = append(segs, Segment{Text: l.Text[pos:sp.Start]})
		}
		segs = append(segs, Segment{Text: l.Text[sp.Start:sp.End], Style: sp.Style})
		pos = sp.End
	}
	if pos < len(l.Text) {
		segs = append(segs, Segment{Text: l.Text[pos:]})
	}
	return segs
}

// builder assembles a Line from styled and unstyled pieces
type builder struct {
	text  strings.Builder
	spans []Span
}

func (b *builder) plain(s string) *builder {
	b.text.WriteString(s)
	return b
}

func (b *builder) styled(s string, style styles.Name) *builder {
	if s == "" {
		return b
	}
	start := b.text.Len()
	b.text.WriteString(s)
	b.spans = append(b.spans, Span{Start: start, End: b.text.Len(), Style: style})
	return b
}

func (b *builder) line() Line {
	return Line{Text: b.text.String(), Spans: b.spans}
}

// indent shifts a block right by one level. Blank lines stay blank.
func indent(block []Line) []Line {
	out := make([]Line, len(block))
	for i, l := range block {
		if l.Blank() {
			out[i] = l
			continue
		}
		shifted := make([]Span, len(l.Spans))
		for j, sp := range l.Spans {
			shifted[j] = Span{Start: sp.Start + len(Indent), End: sp.End + len(Indent), Style: sp.Style}
		}
		out[i] = Line{Text: Indent + l.Text, Spans: shifted}
	}
	return out
}

// splitLines breaks text into lines. A trailing newline does not start an
// extra line and carriage returns before a newline are dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Plain joins the text of lines without any styling
func Plain(lines []Line) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}
