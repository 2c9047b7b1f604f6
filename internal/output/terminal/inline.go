package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// inline flattens n to a single styled string. Breaks become newlines.
func (r *Renderer) inline(n *node.Node) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case node.KindText:
		return n.Text
	case node.KindBreak:
		return "\n"
	case node.KindIcon:
		if c := r.colour(n, "text"); c != nil {
			return r.style().Foreground(c).Render(n.Text)
		}
		return n.Text
	case node.KindCodeBlock:
		return r.code(n.Text, n.Attr(node.AttrLang))
	case node.KindList:
		return r.list(n)
	case node.KindImage:
		return "[" + n.Attr(node.AttrAlt) + "] " + n.Attr(node.AttrSrc)
	}

	text := r.children(n)
	switch n.Kind {
	case node.KindStrong:
		return r.style().Bold(true).Render(text)
	case node.KindEmphasis:
		return r.style().Italic(true).Render(text)
	case node.KindStrike:
		return r.style().Strikethrough(true).Render(text)
	case node.KindCode:
		return r.typography(components.TypographyVariantCode).Render(text)
	case node.KindLink:
		link := r.style().Underline(true).Foreground(r.theme.Palette.Primary.Base).Render(text)
		if href := n.Attr(node.AttrHref); href != "" && href != n.PlainText() {
			link += " (" + href + ")"
		}
		return link
	case node.KindTitle:
		return r.typography(components.TypographyVariantTitle).Render(text)
	}
	return text
}

func (r *Renderer) children(n *node.Node) string {
	var b strings.Builder
	b.WriteString(n.Text)
	for i, c := range n.Children {
		b.WriteString(r.inline(c))
		if c.Kind == node.KindIcon && i < len(n.Children)-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (r *Renderer) typography(variant components.TypographyVariant) lipgloss.Style {
	return components.TypographyStyle(r.theme, variant).Renderer(r.lg)
}
