package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	raw     bool
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// RawText wraps content that already carries its own escape sequences
// (glamour or chroma output). It is never restyled, only wrapped.
func RawText(content string) *Text {
	t := NewText(content)
	t.raw = true
	return t
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, word-wrapped to the context width.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	if ctx.Width > 0 {
		content = ansi.Wrap(content, ctx.Width, "")
	}
	if t.raw {
		return content
	}
	return t.ComputeStyle(ctx).Render(content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// MutedText creates small, faint text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}

// ItalicText creates italic text.
func ItalicText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantItalic))
}
