package terminal

import (
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/folio/internal/node"
)

// Horizontal frame of a callout: two border columns and two padding columns.
const calloutFrame = 4

func (r *Renderer) glamourBody(body *node.Node) (string, bool) {
	if !r.glamour || body == nil {
		return "", false
	}
	source := body.Attr(node.AttrSource)
	if strings.TrimSpace(source) == "" {
		return "", false
	}

	tr, err := r.termRenderer(r.width - calloutFrame)
	if err != nil {
		return "", false
	}
	out, err := tr.Render(source)
	if err != nil {
		return "", false
	}
	return strings.Trim(out, "\n"), true
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.markdowns[width]; ok {
		return tr, nil
	}

	style := glamourstyles.LightStyle
	switch {
	case r.Profile() == termenv.Ascii:
		style = glamourstyles.AsciiStyle
	case r.theme.Dark:
		style = glamourstyles.DarkStyle
	}

	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(style),
		glamour.WithColorProfile(r.Profile()),
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	r.markdowns[width] = tr
	return tr, nil
}
