package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades represents a Tailwind-style color scale with 10 shades from lightest to darkest.
// Shades are indexed from 50 (lightest) to 900 (darkest), matching Tailwind's numbering.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a palette shade scale from the provided colors.
// Colors should be ordered from lightest to darkest. Accepts up to 10 colors.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the color at the specified shade level.
// Returns an empty string if the shade is out of bounds.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette holds every colour family the section styles draw from.
type ColorPalette struct {
	Slate   PaletteShades
	Blue    PaletteShades
	Green   PaletteShades
	Red     PaletteShades
	Yellow  PaletteShades
	Purple  PaletteShades
	Cyan    PaletteShades
	Amber   PaletteShades
	Indigo  PaletteShades
	Emerald PaletteShades
	Orange  PaletteShades
	Pink    PaletteShades
}

func (cp ColorPalette) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteSlate:
		return cp.Slate
	case PaletteBlue:
		return cp.Blue
	case PaletteGreen:
		return cp.Green
	case PaletteRed:
		return cp.Red
	case PaletteYellow:
		return cp.Yellow
	case PalettePurple:
		return cp.Purple
	case PaletteCyan:
		return cp.Cyan
	case PaletteAmber:
		return cp.Amber
	case PaletteIndigo:
		return cp.Indigo
	case PaletteEmerald:
		return cp.Emerald
	case PaletteOrange:
		return cp.Orange
	case PalettePink:
		return cp.Pink
	default:
		return cp.Slate
	}
}

type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteBlue
	PaletteGreen
	PaletteRed
	PaletteYellow
	PalettePurple
	PaletteCyan
	PaletteAmber
	PaletteIndigo
	PaletteEmerald
	PaletteOrange
	PalettePink
)

var paletteFamilyNames = [...]string{
	PaletteSlate:   "slate",
	PaletteBlue:    "blue",
	PaletteGreen:   "green",
	PaletteRed:     "red",
	PaletteYellow:  "yellow",
	PalettePurple:  "purple",
	PaletteCyan:    "cyan",
	PaletteAmber:   "amber",
	PaletteIndigo:  "indigo",
	PaletteEmerald: "emerald",
	PaletteOrange:  "orange",
	PalettePink:    "pink",
}

// String returns the lower-case family name used in class tokens.
func (f PaletteFamily) String() string {
	if f < 0 || int(f) >= len(paletteFamilyNames) {
		return fmt.Sprintf("PaletteFamily(%d)", int(f))
	}
	return paletteFamilyNames[f]
}

// ParsePaletteFamily is the inverse of PaletteFamily.String.
func ParsePaletteFamily(name string) (PaletteFamily, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range paletteFamilyNames {
		if candidate == name {
			return PaletteFamily(i), true
		}
	}
	return PaletteSlate, false
}

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// Value returns the Tailwind number of the shade (50, 100, ... 900).
func (s PaletteShade) Value() int {
	if s <= PaletteShade50 {
		return 50
	}
	return int(s) * 100
}

// ParsePaletteShade maps a Tailwind number back to its shade.
func ParsePaletteShade(value int) (PaletteShade, bool) {
	switch {
	case value == 50:
		return PaletteShade50, true
	case value >= 100 && value <= 900 && value%100 == 0:
		return PaletteShade(value / 100), true
	default:
		return PaletteShade50, false
	}
}

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantBody
	TypographyVariantMuted
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantItalic
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Italic   lipgloss.Style
}

// Theme represents an immutable styling theme for components.
// Themes should be created once and reused. All modification operations
// return new theme instances rather than mutating the original.
type Theme struct {
	Name       string
	Dark       bool
	Palette    Palette
	Colors     ColorPalette
	Borders    BorderSet
	Typography TypographyScale
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e2e8f0", "#1f2937"),
		},
		Success: ColourSet{
			Base:   ac("#22c55e", "#4ade80"),
			OnBase: ac("#052e16", "#022c22"),
			Muted:  ac("#16a34a", "#15803d"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#7f1d1d", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}

	theme := Theme{
		Name:    "light",
		Palette: palette,
		Colors:  tailwindColors(),
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Typography: defaultTypography(palette),
	}
	return theme
}

// DarkTheme returns a dark theme variant
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Dark = true

	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:  lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#94a3b8"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	return theme
}

// LightTheme returns a light theme variant
func LightTheme() Theme {
	return DefaultTheme()
}

// ThemeByName resolves the names accepted by the configuration file.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return DarkTheme(), nil
	case "light", "default":
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true),
		Body:     base,
		Muted:    base.Foreground(p.Neutral.Muted).Faint(true),
		Code:     base.Foreground(p.Primary.Muted),
		Emphasis: base.Bold(true),
		Italic:   base.Italic(true),
	}
}

func tailwindColors() ColorPalette {
	scale := func(hex ...string) PaletteShades {
		colors := make([]lipgloss.Color, len(hex))
		for i, h := range hex {
			colors[i] = lipgloss.Color(h)
		}
		return NewPaletteShades(colors...)
	}

	return ColorPalette{
		Slate:   scale("#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"),
		Blue:    scale("#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"),
		Green:   scale("#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"),
		Red:     scale("#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"),
		Yellow:  scale("#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"),
		Purple:  scale("#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87"),
		Cyan:    scale("#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"),
		Amber:   scale("#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f"),
		Indigo:  scale("#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81"),
		Emerald: scale("#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b"),
		Orange:  scale("#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12"),
		Pink:    scale("#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843"),
	}
}

// PaletteColor returns the color for a given palette family and shade.
// Returns an empty string and false if the shade is invalid.
func PaletteColor(theme Theme, family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	color := theme.Colors.Shades(family).Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantMuted:
		return typo.Muted
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantItalic:
		return typo.Italic
	default:
		return typo.Base
	}
}

// ColourSet represents a semantic color set:
//
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Fluent modifier functions

// Background applies a semantic background colour and matching foreground for optimal contrast.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Shade paints the foreground with a fixed palette shade.
func Shade(family PaletteFamily, shade PaletteShade) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if color, ok := PaletteColor(theme, family, shade); ok {
			return base.Foreground(color)
		}
		return base
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
