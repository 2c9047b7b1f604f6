package components

import (
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Box is a bordered, padded frame around a vertical stack of children.
// It's the foundation for Card, Callout and Quote.
type Box struct {
	BaseComponent
	layout      *Stack
	border      lipgloss.Border
	sides       []bool
	borderColor lipgloss.TerminalColor
	background  lipgloss.TerminalColor
	padX, padY  int
	fill        bool
}

// NewBox creates a frameless box around children.
func NewBox(children ...ui.Renderable) *Box {
	return &Box{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the box and its children.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box; children get the width left inside the frame.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx)

	frame := 2 * b.padX
	if b.border.Left != "" {
		style = style.Border(b.border, b.sides...)
		frame += style.GetBorderLeftSize() + style.GetBorderRightSize()
		if b.borderColor != nil {
			style = style.BorderForeground(b.borderColor)
		}
	}
	if b.background != nil {
		style = style.Background(b.background)
	}
	style = style.Padding(b.padY, b.padX)

	content := b.layout.ViewWithContext(ctx.Inner(frame))
	if b.fill && ctx.Width > 0 {
		// lipgloss widths exclude the border.
		style = style.Width(ctx.Width - style.GetBorderLeftSize() - style.GetBorderRightSize())
	}
	return style.Render(content)
}

// WithBorder sets the border style. Sides follow lipgloss order: top, right, bottom, left.
func (b *Box) WithBorder(border lipgloss.Border, sides ...bool) *Box {
	b.border = border
	b.sides = sides
	return b
}

// WithBorderColor sets the border color.
func (b *Box) WithBorderColor(color lipgloss.TerminalColor) *Box {
	b.borderColor = color
	return b
}

// WithBackground sets the fill colour.
func (b *Box) WithBackground(color lipgloss.TerminalColor) *Box {
	b.background = color
	return b
}

// WithPadding sets vertical and horizontal padding.
func (b *Box) WithPadding(vertical, horizontal int) *Box {
	b.padY, b.padX = vertical, horizontal
	return b
}

// WithFill stretches the box to the full context width.
func (b *Box) WithFill(fill bool) *Box {
	b.fill = fill
	return b
}

// WithGap sets the gap between children.
func (b *Box) WithGap(gap int) *Box {
	b.layout.WithGap(gap)
	return b
}

// WithAlign sets how children line up inside the box.
func (b *Box) WithAlign(align Alignment) *Box {
	b.layout.WithAlign(align)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Box) WithAppliers(appliers ...StyleFunc) *Box {
	b.AddAppliers(appliers...)
	return b
}

// Add appends children to the box.
func (b *Box) Add(children ...ui.Renderable) *Box {
	b.layout.Add(children...)
	return b
}

// Children returns the child renderables.
func (b *Box) Children() []ui.Renderable {
	return b.layout.Children()
}

// NewCard creates a rounded, padded box.
func NewCard(children ...ui.Renderable) *Box {
	return NewBox(children...).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(0, 1).
		WithFill(true)
}

// NewQuote creates a box with only a thick left rule.
func NewQuote(children ...ui.Renderable) *Box {
	return NewBox(children...).
		WithBorder(lipgloss.ThickBorder(), false, false, false, true).
		WithPadding(0, 1)
}
