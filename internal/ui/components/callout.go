package components

import (
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Callout is a bordered block with an optional icon and title row.
// Without a title the icon leads the first body line instead.
type Callout struct {
	BaseComponent
	icon        string
	title       string
	body        []ui.Renderable
	accent      lipgloss.TerminalColor
	borderColor lipgloss.TerminalColor
	background  lipgloss.TerminalColor
	border      lipgloss.Border
}

// NewCallout creates a callout around body.
func NewCallout(body ...ui.Renderable) *Callout {
	return &Callout{
		BaseComponent: NewBaseComponent(),
		body:          body,
		border:        lipgloss.RoundedBorder(),
	}
}

// View renders the callout.
func (c *Callout) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the callout with the provided render context.
func (c *Callout) ViewWithContext(ctx RenderContext) string {
	iconStyle := lipgloss.NewStyle()
	if ctx.Renderer != nil {
		iconStyle = ctx.Renderer.NewStyle()
	}
	if c.accent != nil {
		iconStyle = iconStyle.Foreground(c.accent)
	}

	var children []ui.Renderable
	switch {
	case c.title != "":
		header := c.title
		if c.icon != "" {
			header = iconStyle.Render(c.icon) + " " + header
		}
		children = append(children, TitleText(header))
		children = append(children, c.body...)
	case c.icon != "":
		icon := NewText(c.icon).WithStyle(iconStyle)
		children = append(children, HStack(icon, NewBox(c.body...)).WithGap(1))
	default:
		children = append(children, c.body...)
	}

	box := NewBox(children...).
		WithBorder(c.border).
		WithPadding(0, 1).
		WithFill(true)
	if c.borderColor != nil {
		box.WithBorderColor(c.borderColor)
	}
	if c.background != nil {
		box.WithBackground(c.background)
	}
	box.BaseComponent = c.BaseComponent
	return box.ViewWithContext(ctx)
}

// WithIcon sets the leading glyph.
func (c *Callout) WithIcon(icon string) *Callout {
	c.icon = icon
	return c
}

// WithTitle adds a title row above the body.
func (c *Callout) WithTitle(title string) *Callout {
	c.title = title
	return c
}

// WithAccent colours the icon.
func (c *Callout) WithAccent(color lipgloss.TerminalColor) *Callout {
	c.accent = color
	return c
}

// WithBorderColor colours the frame.
func (c *Callout) WithBorderColor(color lipgloss.TerminalColor) *Callout {
	c.borderColor = color
	return c
}

// WithBackground fills the callout.
func (c *Callout) WithBackground(color lipgloss.TerminalColor) *Callout {
	c.background = color
	return c
}

// WithBorder replaces the frame style.
func (c *Callout) WithBorder(border lipgloss.Border) *Callout {
	c.border = border
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Callout) WithAppliers(appliers ...StyleFunc) *Callout {
	c.AddAppliers(appliers...)
	return c
}

// Title returns the callout title.
func (c *Callout) Title() string {
	return c.title
}

// Icon returns the leading glyph.
func (c *Callout) Icon() string {
	return c.icon
}
