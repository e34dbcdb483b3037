package topics

import "github.com/charmbracelet/glamour"

// Renderer formats topic content for display. ext is the file extension of
// the topic, including the dot.
type Renderer interface {
	Render(content, ext string) string
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(content, ext string) string

// Render implements Renderer
func (f RendererFunc) Render(content, ext string) string { return f(content, ext) }

// Plain returns content unchanged
var Plain Renderer = RendererFunc(func(content, _ string) string { return content })

// NoTTYStyle is the glamour style used when output is not colored
const NoTTYStyle = "notty"

// MarkdownRenderer renders .md topics with glamour. Other formats, and
// content glamour fails to render, are returned unchanged.
type MarkdownRenderer struct {
	// Colored is consulted on every render, so it may depend on flags
	// parsed after the renderer was built. Nil means not colored.
	Colored func() bool
	// Width wraps rendered text. Zero keeps the glamour default.
	Width int
}

// Style returns the glamour style the next render uses
func (r *MarkdownRenderer) Style() string {
	if r.Colored != nil && r.Colored() {
		return "auto"
	}
	return NoTTYStyle
}

// Render implements Renderer
func (r *MarkdownRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if style := r.Style(); style != "auto" {
		options = []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
