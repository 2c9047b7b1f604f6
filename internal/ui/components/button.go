package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSuccess
	ButtonVariantMuted
)

// Button draws an action label. Focus is shown with reverse video so the
// reader can tell which block the keyboard acts on.
type Button struct {
	BaseComponent
	label   string
	variant ButtonVariant
	focused bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx)

	var slot PaletteSlot
	switch b.variant {
	case ButtonVariantSuccess:
		slot = PaletteSuccess
	case ButtonVariantMuted:
		slot = PaletteNeutral
	default:
		slot = PalettePrimary
	}
	style = Background(slot)(style, ctx.Theme).Padding(0, 1)

	if b.focused {
		style = style.Bold(true).Reverse(true)
	}
	return style.Render("[ " + b.label + " ]")
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithFocused marks the button as the keyboard target.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsFocused reports whether the button carries keyboard focus.
func (b *Button) IsFocused() bool {
	return b.focused
}
