package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small pill of text, used for hashtags and step markers.
type Badge struct {
	BaseComponent
	text       string
	foreground lipgloss.TerminalColor
	background lipgloss.TerminalColor
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	b := &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
	b.AddAppliers(PaddingX(1))
	return b
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx)
	if b.background != nil {
		style = style.Background(b.background)
	}
	if b.foreground != nil {
		style = style.Foreground(b.foreground)
	}
	return style.Render(b.text)
}

// WithColors sets the badge foreground and background; nil leaves a slot untouched.
func (b *Badge) WithColors(foreground, background lipgloss.TerminalColor) *Badge {
	b.foreground = foreground
	b.background = background
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// MarkerBadge is the round step marker: primary while pending, success once done.
func MarkerBadge(text string, done bool) *Badge {
	slot := PalettePrimary
	if done {
		slot = PaletteSuccess
	}
	return NewBadge(text).WithAppliers(Background(slot), Typography(TypographyVariantEmphasis))
}
