// Package styles maps section types to their colour treatment and default icon.
package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/icons"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// Swatch is one Tailwind-style colour: a family and a shade.
type Swatch struct {
	Family components.PaletteFamily
	Shade  components.PaletteShade
}

// Class renders the swatch as a class token: Swatch{Red, 400}.Class("border") == "border-red-400".
func (s Swatch) Class(prefix string) string {
	return fmt.Sprintf("%s-%s-%d", prefix, s.Family, s.Shade.Value())
}

// Colour resolves the swatch against a theme's colour scales.
func (s Swatch) Colour(theme components.Theme) lipgloss.Color {
	color, _ := components.PaletteColor(theme, s.Family, s.Shade)
	return color
}

// ParseToken splits a class token such as "bg-amber-50" into its prefix and swatch.
func ParseToken(token string) (string, Swatch, bool) {
	last := strings.LastIndexByte(token, '-')
	if last <= 0 {
		return "", Swatch{}, false
	}
	value, err := strconv.Atoi(token[last+1:])
	if err != nil {
		return "", Swatch{}, false
	}
	shade, ok := components.ParsePaletteShade(value)
	if !ok {
		return "", Swatch{}, false
	}
	rest := token[:last]
	mid := strings.LastIndexByte(rest, '-')
	if mid <= 0 {
		return "", Swatch{}, false
	}
	family, ok := components.ParsePaletteFamily(rest[mid+1:])
	if !ok {
		return "", Swatch{}, false
	}
	return rest[:mid], Swatch{Family: family, Shade: shade}, true
}

// Style is the colour treatment of one section type.
type Style struct {
	Background  Swatch
	Border      Swatch
	Accent      Swatch
	DefaultIcon icons.Name
}

// Classes returns the background and border tokens in that order.
func (s Style) Classes() []string {
	return []string{s.Background.Class("bg"), s.Border.Class("border")}
}

func sw(family components.PaletteFamily, shade components.PaletteShade) Swatch {
	return Swatch{Family: family, Shade: shade}
}

const (
	s50  = components.PaletteShade50
	s200 = components.PaletteShade200
	s300 = components.PaletteShade300
	s400 = components.PaletteShade400
	s500 = components.PaletteShade500
	s600 = components.PaletteShade600
	s700 = components.PaletteShade700
	s900 = components.PaletteShade900
)

var table = map[content.SectionType]Style{
	content.TypeIntro:         {sw(components.PaletteSlate, s50), sw(components.PaletteSlate, s200), sw(components.PaletteSlate, s600), ""},
	content.TypeSection:       {sw(components.PaletteSlate, s50), sw(components.PaletteSlate, s300), sw(components.PaletteBlue, s600), icons.BookOpen},
	content.TypeSarcasm:       {sw(components.PalettePurple, s50), sw(components.PalettePurple, s300), sw(components.PalettePurple, s600), icons.Smile},
	content.TypeWarning:       {sw(components.PaletteRed, s50), sw(components.PaletteRed, s400), sw(components.PaletteRed, s600), icons.AlertTriangle},
	content.TypeTip:           {sw(components.PaletteGreen, s50), sw(components.PaletteGreen, s400), sw(components.PaletteGreen, s600), icons.Lightbulb},
	content.TypeFact:          {sw(components.PaletteBlue, s50), sw(components.PaletteBlue, s400), sw(components.PaletteBlue, s600), icons.Info},
	content.TypeOpinion:       {sw(components.PaletteAmber, s50), sw(components.PaletteAmber, s400), sw(components.PaletteAmber, s600), icons.MessageCircle},
	content.TypeQuote:         {sw(components.PaletteSlate, s50), sw(components.PaletteSlate, s400), sw(components.PaletteSlate, s600), icons.Quote},
	content.TypeCTA:           {sw(components.PaletteIndigo, s50), sw(components.PaletteIndigo, s400), sw(components.PaletteIndigo, s600), icons.Rocket},
	content.TypeHashtags:      {sw(components.PaletteCyan, s50), sw(components.PaletteCyan, s300), sw(components.PaletteCyan, s700), icons.Hash},
	content.TypePrompt:        {sw(components.PaletteSlate, s900), sw(components.PaletteSlate, s700), sw(components.PaletteEmerald, s400), icons.Terminal},
	content.TypeAuthorComment: {sw(components.PaletteYellow, s50), sw(components.PaletteYellow, s400), sw(components.PaletteYellow, s700), icons.PenTool},
	content.TypeImage:         {sw(components.PaletteSlate, s50), sw(components.PaletteSlate, s200), sw(components.PaletteSlate, s500), icons.Image},
	content.TypeGraph:         {sw(components.PaletteCyan, s50), sw(components.PaletteCyan, s400), sw(components.PaletteCyan, s600), icons.BarChart},
	content.TypeTutorialStep:  {sw(components.PaletteBlue, s50), sw(components.PaletteBlue, s300), sw(components.PaletteBlue, s600), icons.ListChecks},
	content.TypeSecret:        {sw(components.PaletteSlate, s900), sw(components.PaletteSlate, s700), sw(components.PaletteRed, s400), icons.Lock},
}

// Step marker accents.
var (
	StepPending = sw(components.PaletteBlue, s500)
	StepDone    = sw(components.PaletteGreen, s500)
)

// For returns the style of a section type. Unknown types get the generic section style.
func For(t content.SectionType) Style {
	if style, ok := table[t]; ok {
		return style
	}
	return table[content.TypeSection]
}

var accentOverrides = map[icons.Name]Swatch{
	icons.TrendingDown: sw(components.PaletteRed, s400),
	icons.TrendingUp:   sw(components.PaletteGreen, s400),
	icons.AlertCircle:  sw(components.PaletteRed, s400),
	icons.ShieldAlert:  sw(components.PaletteRed, s400),
	icons.Zap:          sw(components.PaletteYellow, s400),
	icons.Heart:        sw(components.PalettePink, s400),
	icons.Flame:        sw(components.PaletteOrange, s400),
	icons.Star:         sw(components.PaletteAmber, s400),
	icons.Target:       sw(components.PaletteIndigo, s400),
	icons.DollarSign:   sw(components.PaletteEmerald, s400),
	icons.Sparkles:     sw(components.PalettePurple, s400),
	icons.Brain:        sw(components.PalettePurple, s400),
}

// AccentOverride returns the border colour an icon imposes on a generic section.
func AccentOverride(icon string) (Swatch, bool) {
	resolved := icons.Resolve(icon)
	if resolved.IsNone() {
		return Swatch{}, false
	}
	swatch, ok := accentOverrides[resolved.Name]
	return swatch, ok
}

// Resolved applies the icon override on top of For. Only the border of the
// generic section type is ever overridden.
func Resolved(t content.SectionType, icon string) Style {
	style := For(t)
	if t != content.TypeSection {
		return style
	}
	if swatch, ok := AccentOverride(icon); ok {
		style.Border = swatch
	}
	return style
}

// Icon resolves the icon a section shows: its own if recognised, else the
// type's default, else none.
func Icon(t content.SectionType, name string) icons.Icon {
	if icon := icons.Resolve(name); !icon.IsNone() {
		return icon
	}
	return icons.Lookup(For(t).DefaultIcon)
}
