package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/icons"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

func TestForCoversEveryKnownType(t *testing.T) {
	t.Parallel()

	for _, typ := range content.KnownTypes() {
		_, ok := table[typ]
		assert.True(t, ok, "missing style for %s", typ)
	}
}

func TestForUnknownTypeUsesSectionStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, For(content.TypeSection), For("mystery"))
}

func TestSwatchClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "border-red-400", For(content.TypeWarning).Border.Class("border"))
	assert.Equal(t, "bg-amber-50", For(content.TypeOpinion).Background.Class("bg"))
	assert.Equal(t, []string{"bg-slate-900", "border-slate-700"}, For(content.TypePrompt).Classes())
}

func TestParseToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token  string
		prefix string
		swatch Swatch
		ok     bool
	}{
		{"bg-amber-50", "bg", Swatch{components.PaletteAmber, components.PaletteShade50}, true},
		{"border-red-400", "border", Swatch{components.PaletteRed, components.PaletteShade400}, true},
		{"border-l-emerald-700", "border-l", Swatch{components.PaletteEmerald, components.PaletteShade700}, true},
		{"animate-pulse", "", Swatch{}, false},
		{"bg-teal-50", "", Swatch{}, false},
		{"bg-red-450", "", Swatch{}, false},
		{"red-400", "", Swatch{}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			prefix, swatch, ok := ParseToken(tt.token)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.swatch, swatch)
		})
	}
}

func TestSwatchColour(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#f87171"), For(content.TypeWarning).Border.Colour(components.DefaultTheme()))
}

func TestAccentOverride(t *testing.T) {
	t.Parallel()

	swatch, ok := AccentOverride("TrendingDown")
	require.True(t, ok)
	assert.Equal(t, "border-red-400", swatch.Class("border"))

	swatch, ok = AccentOverride("trending-up")
	require.True(t, ok)
	assert.Equal(t, components.PaletteGreen, swatch.Family)

	_, ok = AccentOverride("Lightbulb")
	assert.False(t, ok)
	_, ok = AccentOverride("")
	assert.False(t, ok)
}

func TestResolvedOverridesOnlySectionBorder(t *testing.T) {
	t.Parallel()

	base := For(content.TypeSection)
	got := Resolved(content.TypeSection, "TrendingDown")
	assert.Equal(t, "border-red-400", got.Border.Class("border"))
	assert.Equal(t, base.Background, got.Background)
	assert.Equal(t, base.Accent, got.Accent)

	assert.Equal(t, For(content.TypeTip), Resolved(content.TypeTip, "TrendingDown"), "other types keep their border")
	assert.Equal(t, base, Resolved(content.TypeSection, "Lightbulb"))
}

func TestIconFallsBackToTypeDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, icons.Rocket, Icon(content.TypeTip, "Rocket").Name)
	assert.Equal(t, icons.Lightbulb, Icon(content.TypeTip, "NotAnIcon").Name)
	assert.Equal(t, icons.Lightbulb, Icon(content.TypeTip, "").Name)
	assert.True(t, Icon(content.TypeIntro, "").IsNone())
}
