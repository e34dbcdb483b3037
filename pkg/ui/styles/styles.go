// Package styles defines the visual styling for unitool's terminal output.
//
// Styles have semantic names (Positive, Negative, Muted, ...) and are loaded
// once from an embedded YAML table. A Table is never mutated after it is
// built, so a single table can be shared by any number of concurrent
// renders. Users can overlay their own YAML file with Load.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Name is the semantic name of a style
type Name string

// Report styles
const (
	Positive         Name = "Positive"
	Negative         Name = "Negative"
	Muted            Name = "Muted"
	MutedBold        Name = "MutedBold"
	Secondary        Name = "Secondary"
	Bold             Name = "Bold"
	PositiveInverted Name = "PositiveInverted"
	NegativeInverted Name = "NegativeInverted"
)

// Interface styles
const (
	Error Name = "Error"
	Info  Name = "Info"
)

// IsKnown reports whether name is one of the styles unitool renders with.
// Other names in a styles file are accepted but never used.
func IsKnown(name Name) bool {
	switch name {
	case Positive, Negative, Muted, MutedBold, Secondary, Bold,
		PositiveInverted, NegativeInverted, Error, Info:
		return true
	default:
		return false
	}
}

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Table maps style names to terminal attributes
type Table struct {
	colors map[string]lipgloss.AdaptiveColor
	defs   map[Name]StyleDef
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table. It is built on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(embeddedStyles)
		if err != nil {
			// unstyled output
			t = &Table{
				colors: map[string]lipgloss.AdaptiveColor{},
				defs:   map[Name]StyleDef{},
			}
		}
		defaultTable = t
	})
	return defaultTable
}

// Parse builds a table from YAML data
func Parse(data []byte) (*Table, error) {
	t := &Table{
		colors: map[string]lipgloss.AdaptiveColor{},
		defs:   map[Name]StyleDef{},
	}
	if err := t.apply(data); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads the YAML file at path and overlays it on the default table.
// Colors and styles missing from the file keep their default values.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}

	base := Default()
	t := &Table{
		colors: make(map[string]lipgloss.AdaptiveColor, len(base.colors)),
		defs:   make(map[Name]StyleDef, len(base.defs)),
	}
	for k, v := range base.colors {
		t.colors[k] = v
	}
	for k, v := range base.defs {
		t.defs[k] = v
	}

	if err := t.apply(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t *Table) apply(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	for name, def := range config.Colors {
		t.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range config.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref != "" && !t.isColor(ref) {
				return fmt.Errorf("style %s references unknown color %q", name, ref)
			}
		}
		t.defs[Name(name)] = def
	}
	return nil
}

func (t *Table) isColor(ref string) bool {
	if strings.HasPrefix(ref, "#") {
		return true
	}
	_, ok := t.colors[ref]
	return ok
}

func (t *Table) color(ref string) lipgloss.TerminalColor {
	if c, ok := t.colors[ref]; ok {
		return c
	}
	return lipgloss.Color(ref)
}

// Has reports whether the table defines name
func (t *Table) Has(name Name) bool {
	_, ok := t.defs[name]
	return ok
}

// Names returns the defined style names in sorted order
func (t *Table) Names() []Name {
	names := make([]Name, 0, len(t.defs))
	for name := range t.defs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Style returns the lipgloss style for name, bound to renderer r.
// A nil renderer uses the lipgloss default renderer. Unknown names
// yield an empty style.
func (t *Table) Style(r *lipgloss.Renderer, name Name) lipgloss.Style {
	var style lipgloss.Style
	if r != nil {
		style = r.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}

	def, ok := t.defs[name]
	if !ok {
		return style
	}

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		style = style.Foreground(t.color(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(t.color(def.Background))
	}
	return style
}
