// Package render turns a parsed report into display lines.
//
// Rendering is a pure function of the report tree: it performs no I/O,
// keeps no state between calls and never fails. Each line carries its
// plain text plus the style spans a printer applies to it (see pkg/ui).
//
// Layout rules:
//   - suite header: name highlighted by outcome, then passed, failed and
//     skipped counters
//   - children of suites and cases are indented one level (4 spaces)
//     relative to their parent
//   - properties are dropped inside suites but shown as a placeholder
//     inside cases
//   - captured output of passing cases is suppressed
//   - failed cases are preceded by a blank line and their name is bold
package render

import (
	"strconv"

	"github.com/arthur-debert/unitool/pkg/report"
	"github.com/arthur-debert/unitool/pkg/ui/styles"
)

// Indent is the indentation added per nesting level
const Indent = "    "

// PropertiesPlaceholder is shown for a properties element inside a case
const PropertiesPlaceholder = "[Properties]"

// Result markers
const (
	PassedMarker  = "✓"
	FailedMarker  = "✗"
	SkippedMarker = "-"
)

// Report renders every top-level suite of rep, in document order
func Report(rep *report.Report) []Line {
	var lines []Line
	for i := range rep.Suites {
		lines = append(lines, Suite(&rep.Suites[i])...)
	}
	return lines
}

// Suite renders a suite header followed by its indented details
func Suite(s *report.Suite) []Line {
	lines := []Line{suiteHeader(s)}
	for _, d := range s.Details {
		if _, ok := d.(report.Properties); ok {
			continue
		}
		block := Detail(d)
		if len(block) == 0 {
			continue
		}
		lines = append(lines, indent(block)...)
	}
	return lines
}

// HeaderStyle selects the style of a suite name. A failure anywhere in the
// suite wins over everything else; a suite where every test passed is
// positive; anything else, such as a suite with skipped tests, is muted.
func HeaderStyle(s *report.Suite) styles.Name {
	switch {
	case s.Failed > 0:
		return styles.NegativeInverted
	case s.Passed == s.Total:
		return styles.PositiveInverted
	default:
		return styles.MutedBold
	}
}

func suiteHeader(s *report.Suite) Line {
	b := &builder{}
	style := HeaderStyle(s)
	if style == styles.MutedBold {
		b.styled(s.Name, style)
	} else {
		// inverted names are padded so the highlight extends past the text
		b.styled(" "+s.Name+" ", style)
	}
	b.plain(" ").styled(strconv.Itoa(s.Passed), styles.Positive)
	b.plain(" ").styled(strconv.Itoa(s.Failed), styles.Negative)
	b.plain(" ").styled(strconv.Itoa(s.Skipped), styles.Muted)
	return b.line()
}

// Case renders a case line and its indented details. Failed cases are
// preceded by a blank line.
func Case(c *report.Case) []Line {
	var lines []Line
	failed := c.Result == report.Failed
	if failed {
		lines = append(lines, Line{})
	}

	marker, markerStyle := ResultMarker(c.Result)
	b := &builder{}
	b.styled(marker, markerStyle).plain(" ")
	if failed {
		b.styled(c.Name, styles.Bold)
	} else {
		b.plain(c.Name)
	}
	lines = append(lines, b.line())

	for _, d := range c.Details {
		var block []Line
		switch d := d.(type) {
		case report.Output:
			if c.Result == report.Passed {
				continue
			}
			block = Detail(d)
		case report.Properties:
			block = []Line{{Text: PropertiesPlaceholder}}
		default:
			block = Detail(d)
		}
		if len(block) == 0 {
			continue
		}
		lines = append(lines, indent(block)...)
	}
	return lines
}

// ResultMarker returns the glyph and style shown in front of a case name
func ResultMarker(r report.Result) (string, styles.Name) {
	switch r {
	case report.Failed:
		return FailedMarker, styles.Negative
	case report.Skipped:
		return SkippedMarker, styles.Muted
	default:
		return PassedMarker, styles.Positive
	}
}

// Detail renders a single detail without any context from its parent.
// An empty result means the detail has nothing to show.
func Detail(d report.Detail) []Line {
	switch d := d.(type) {
	case *report.Suite:
		return Suite(d)
	case *report.Case:
		return Case(d)
	case report.Failure:
		return FailureInfo(d.FailureInfo)
	case report.Reason:
		return FailureInfo(d.FailureInfo)
	case report.Output:
		return output(d)
	case report.Properties:
		return []Line{{Text: PropertiesPlaceholder}}
	default:
		return nil
	}
}

// FailureInfo renders each fragment on its own lines, in document order
func FailureInfo(info report.FailureInfo) []Line {
	var lines []Line
	for _, fd := range info.Details {
		var (
			text  string
			style styles.Name
		)
		switch fd := fd.(type) {
		case report.Message:
			text, style = string(fd), styles.Negative
		case report.StackTrace:
			text, style = string(fd), styles.Secondary
		default:
			continue
		}
		for _, l := range splitLines(text) {
			lines = append(lines, (&builder{}).styled(l, style).line())
		}
	}
	return lines
}

func output(o report.Output) []Line {
	raw := splitLines(string(o))
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = Line{Text: l}
	}
	return lines
}
