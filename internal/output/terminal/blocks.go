package terminal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/folio/internal/icons"
	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/styles"
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

func (r *Renderer) block(n *node.Node, focused bool) components.ContextualRenderable {
	switch n.Kind {
	case node.KindCallout:
		return r.callout(n)
	case node.KindBlockquote:
		return r.quote(n)
	case node.KindBadges:
		return r.badges(n)
	case node.KindCard:
		return r.card(n)
	case node.KindFigure:
		return r.figure(n)
	case node.KindCopyBlock:
		return r.copyBlock(n, focused)
	case node.KindTutorialStep:
		return r.tutorialStep(n, focused)
	case node.KindError:
		return components.NewCallout(components.NewText(n.PlainText())).
			WithIcon(icons.Lookup(icons.AlertCircle).Glyph).
			WithBorderColor(r.theme.Palette.Danger.Base)
	case node.KindParagraph:
		if n.HasClass("intro") {
			return components.RawText(r.inline(n)).WithAppliers(components.Typography(components.TypographyVariantItalic))
		}
		return components.RawText(r.inline(n))
	default:
		return components.VStack(r.flow(n.Children)...)
	}
}

// colour returns the first class colour with the given prefix, or nil.
func (r *Renderer) colour(n *node.Node, prefix string) lipgloss.TerminalColor {
	if n == nil {
		return nil
	}
	for _, class := range n.Classes {
		p, swatch, ok := styles.ParseToken(class)
		if ok && p == prefix {
			return swatch.Colour(r.theme)
		}
	}
	return nil
}

func child(n *node.Node, kind node.Kind) *node.Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// label joins the text of n's children with single spaces: "✓ Done".
func label(n *node.Node) string {
	var parts []string
	for _, c := range n.Children {
		if text := c.PlainText(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) callout(n *node.Node) components.ContextualRenderable {
	body := child(n, node.KindBody)

	var icon *node.Node
	title := ""
	if header := child(n, node.KindHeader); header != nil {
		icon = child(header, node.KindIcon)
		title = child(header, node.KindTitle).PlainText()
	}

	var blocks []*node.Node
	if body != nil {
		blocks = body.Children
		if len(blocks) > 0 && blocks[0].Kind == node.KindIcon {
			icon, blocks = blocks[0], blocks[1:]
		}
	}

	var children []ui.Renderable
	if source, ok := r.glamourBody(body); ok {
		children = append(children, components.RawText(source))
	} else {
		children = r.flow(blocks)
	}

	c := components.NewCallout(children...).WithTitle(title)
	if icon != nil {
		c.WithIcon(icon.Text).WithAccent(r.colour(icon, "text"))
	}
	if border := r.colour(n, "border"); border != nil {
		c.WithBorderColor(border)
	}
	return c
}

func (r *Renderer) quote(n *node.Node) components.ContextualRenderable {
	box := components.NewQuote(r.flow(n.Children)...)
	if border := r.colour(n, "border"); border != nil {
		box.WithBorderColor(border)
	}
	return box
}

func (r *Renderer) badges(n *node.Node) components.ContextualRenderable {
	row := components.HStack().WithGap(1)
	for _, badge := range n.Children {
		row.Add(components.NewBadge(badge.PlainText()).
			WithColors(r.colour(badge, "text"), r.colour(badge, "bg")))
	}
	return row
}

func (r *Renderer) card(n *node.Node) components.ContextualRenderable {
	card := components.NewCard(r.flow(n.Children)...)
	if border := r.colour(n, "border"); border != nil {
		card.WithBorderColor(border)
	}
	if n.HasClass("text-center") {
		card.WithAlign(components.AlignCenter)
	}
	return card
}

func (r *Renderer) figure(n *node.Node) components.ContextualRenderable {
	img := child(n, node.KindImage)
	alt := img.Attr(node.AttrAlt)
	if alt == "" {
		alt = "image"
	}
	stack := components.VStack(
		components.NewText(icons.Lookup(icons.Image).Glyph+" "+alt),
		components.MutedText(img.Attr(node.AttrSrc)),
	)
	if caption := child(n, node.KindCaption); caption != nil {
		stack.Add(components.ItalicText(caption.PlainText()))
	}
	return stack
}

func (r *Renderer) copyBlock(n *node.Node, focused bool) components.ContextualRenderable {
	card := components.NewCard().WithGap(1)
	if header := child(n, node.KindHeader); header != nil {
		card.Add(components.RawText(r.inline(header)).
			WithAppliers(components.Typography(components.TypographyVariantTitle)))
	}
	if code := child(n, node.KindCodeBlock); code != nil {
		card.Add(components.RawText(r.code(code.Text, code.Attr(node.AttrLang))))
	}
	if button := child(n, node.KindButton); button != nil {
		variant := components.ButtonVariantPrimary
		if button.Attr(node.AttrState) == "copied" {
			variant = components.ButtonVariantSuccess
		}
		card.Add(components.NewButton(label(button)).WithVariant(variant).WithFocused(focused))
	}
	return r.frame(card, n, focused)
}

func (r *Renderer) tutorialStep(n *node.Node, focused bool) components.ContextualRenderable {
	done := n.Attr(node.AttrState) == "done"
	card := components.NewCard().WithGap(1)

	if header := child(n, node.KindHeader); header != nil {
		row := components.HStack().WithGap(1)
		if marker := child(header, node.KindMarker); marker != nil {
			row.Add(components.MarkerBadge(marker.PlainText(), done))
		}
		if title := child(header, node.KindTitle); title != nil {
			row.Add(components.TitleText(title.PlainText()))
		}
		card.Add(row)
	}
	if quote := child(n, node.KindBlockquote); quote != nil {
		card.Add(r.quote(quote))
	}
	if body := child(n, node.KindBody); body != nil {
		card.Add(r.flow(body.Children)...)
	}
	if button := child(n, node.KindButton); button != nil {
		variant := components.ButtonVariantPrimary
		if done {
			variant = components.ButtonVariantSuccess
		}
		card.Add(components.NewButton(label(button)).WithVariant(variant).WithFocused(focused))
	}
	return r.frame(card, n, focused)
}

// frame applies the block's border colour, or the focus border.
func (r *Renderer) frame(card *components.Box, n *node.Node, focused bool) *components.Box {
	if focused {
		return card.WithBorder(lipgloss.ThickBorder()).WithBorderColor(r.theme.Palette.Primary.Base)
	}
	if border := r.colour(n, "border"); border != nil {
		card.WithBorderColor(border)
	}
	return card
}

// flow maps block-level nodes (paragraphs, lists, headings, code) to renderables.
func (r *Renderer) flow(nodes []*node.Node) []ui.Renderable {
	var out []ui.Renderable
	var inline []*node.Node
	flush := func() {
		if len(inline) == 0 {
			return
		}
		var b strings.Builder
		for _, n := range inline {
			b.WriteString(r.inline(n))
		}
		out = append(out, components.RawText(b.String()))
		inline = nil
	}

	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch n.Kind {
		case node.KindParagraph, node.KindLabel:
			flush()
			out = append(out, components.RawText(r.inline(n)))
		case node.KindHeading:
			flush()
			out = append(out, components.RawText(r.style().Bold(true).Underline(true).Render(r.inline(n))))
		case node.KindList:
			flush()
			out = append(out, components.RawText(r.list(n)))
		case node.KindCodeBlock:
			flush()
			out = append(out, components.RawText(r.code(n.Text, n.Attr(node.AttrLang))))
		case node.KindBlockquote:
			flush()
			out = append(out, r.quote(n))
		case node.KindRule:
			flush()
			out = append(out, rule{style: r.style().Foreground(r.theme.Palette.Neutral.Base)})
		default:
			inline = append(inline, n)
		}
	}
	flush()
	return out
}

func (r *Renderer) list(n *node.Node) string {
	ordered := n.Attr(node.AttrOrdered) == "true"
	number := 1
	if start, err := strconv.Atoi(n.Attr(node.AttrStart)); err == nil {
		number = start
	}

	var lines []string
	for _, item := range n.Children {
		marker := "• "
		if ordered {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		pad := strings.Repeat(" ", ansi.StringWidth(marker))

		var parts []string
		for _, c := range item.Children {
			if c.Kind == node.KindList {
				parts = append(parts, r.list(c))
				continue
			}
			parts = append(parts, r.inline(c))
		}
		for i, line := range strings.Split(strings.Join(parts, "\n"), "\n") {
			if i == 0 {
				lines = append(lines, marker+line)
				continue
			}
			lines = append(lines, pad+line)
		}
	}
	return strings.Join(lines, "\n")
}

type rule struct {
	style lipgloss.Style
}

func (r rule) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

func (r rule) ViewWithContext(ctx components.RenderContext) string {
	width := ctx.Width
	if width <= 0 {
		width = 3
	}
	return r.style.Render(strings.Repeat("─", width))
}
