// Package terminal draws presentation trees as ANSI text using the lipgloss
// components in internal/ui/components.
package terminal

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// DefaultWidth is used when no width is configured.
const DefaultWidth = 80

// Renderer turns presentation trees into terminal text.
type Renderer struct {
	theme     components.Theme
	lg        *lipgloss.Renderer
	width     int
	glamour   bool
	highlight bool

	mu        sync.Mutex
	markdowns map[int]*glamour.TermRenderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme selects the colour theme.
func WithTheme(theme components.Theme) Option {
	return func(r *Renderer) { r.theme = theme }
}

// WithWidth sets the column budget; zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width >= 0 {
			r.width = width
		}
	}
}

// WithProfile forces a colour profile instead of detecting it from the writer.
func WithProfile(profile termenv.Profile) Option {
	return func(r *Renderer) { r.lg.SetColorProfile(profile) }
}

// WithGlamour renders callout bodies from their markdown source with glamour
// instead of walking the parsed nodes.
func WithGlamour(enabled bool) Option {
	return func(r *Renderer) { r.glamour = enabled }
}

// WithHighlight toggles chroma syntax highlighting of code blocks.
func WithHighlight(enabled bool) Option {
	return func(r *Renderer) { r.highlight = enabled }
}

// New creates a Renderer whose colour profile is detected from w.
func New(w io.Writer, opts ...Option) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	r := &Renderer{
		theme:     components.DefaultTheme(),
		lg:        lipgloss.NewRenderer(w),
		width:     DefaultWidth,
		highlight: true,
		markdowns: make(map[int]*glamour.TermRenderer),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lg.SetHasDarkBackground(r.theme.Dark)
	return r
}

// Profile returns the colour profile output is encoded for.
func (r *Renderer) Profile() termenv.Profile {
	return r.lg.ColorProfile()
}

// Width returns the configured column budget.
func (r *Renderer) Width() int {
	return r.width
}

// Span locates one top-level block in rendered output. Lines are zero
// based; End is exclusive.
type Span struct {
	Key   string
	Start int
	End   int
}

// Layout is rendered output plus the position of every top-level block.
type Layout struct {
	Text  string
	Spans []Span
}

// Span returns the span of the block with the given key.
func (l Layout) Span(key string) (Span, bool) {
	for _, span := range l.Spans {
		if span.Key == key {
			return span, true
		}
	}
	return Span{}, false
}

// Render draws tree without any focused block.
func (r *Renderer) Render(tree *node.Node) string {
	return r.Layout(tree, "").Text
}

// Layout draws tree and records where each block landed. The block whose
// key equals focus is drawn with the focus treatment.
func (r *Renderer) Layout(tree *node.Node, focus string) Layout {
	if tree == nil {
		return Layout{}
	}
	ctx := r.context()

	blocks := tree.Children
	if tree.Kind != node.KindDocument {
		blocks = []*node.Node{tree}
	}

	var (
		out   strings.Builder
		spans []Span
		line  int
	)
	for _, block := range blocks {
		view := r.block(block, block.Key != "" && block.Key == focus).ViewWithContext(ctx)
		if view == "" {
			continue
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
			line += 2
		}
		height := strings.Count(view, "\n") + 1
		spans = append(spans, Span{Key: block.Key, Start: line, End: line + height})
		out.WriteString(view)
		line += height - 1
	}
	return Layout{Text: out.String(), Spans: spans}
}

func (r *Renderer) context() components.RenderContext {
	return components.RenderContext{
		Theme:    r.theme,
		Renderer: r.lg,
		Width:    r.width,
	}
}

func (r *Renderer) style() lipgloss.Style {
	return r.lg.NewStyle()
}
