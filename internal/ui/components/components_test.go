package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "#3b82f6", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#111827", theme.Palette.Surface.OnBase.Light)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
	assert.False(t, theme.Dark)
}

func TestDarkTheme(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.True(t, dark.Dark)
	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light, "dark theme should invert surface base")
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	dark, err := ThemeByName("dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", dark.Name)

	light, err := ThemeByName("Light")
	require.NoError(t, err)
	assert.Equal(t, "light", light.Name)

	_, err = ThemeByName("solarized")
	require.Error(t, err)
}

func TestPaletteColor(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	tests := []struct {
		family PaletteFamily
		shade  PaletteShade
		want   lipgloss.Color
	}{
		{PaletteBlue, PaletteShade500, "#3b82f6"},
		{PaletteRed, PaletteShade400, "#f87171"},
		{PaletteAmber, PaletteShade50, "#fffbeb"},
		{PaletteEmerald, PaletteShade400, "#34d399"},
		{PalettePink, PaletteShade400, "#f472b6"},
	}
	for _, tt := range tests {
		color, ok := PaletteColor(theme, tt.family, tt.shade)
		require.True(t, ok, tt.family.String())
		assert.Equal(t, tt.want, color, tt.family.String())
	}

	_, ok := PaletteColor(theme, PaletteBlue, PaletteShade(99))
	assert.False(t, ok, "out-of-range shades should report missing")
}

func TestPaletteFamilyNames(t *testing.T) {
	t.Parallel()

	for family := PaletteSlate; family <= PalettePink; family++ {
		parsed, ok := ParsePaletteFamily(family.String())
		require.True(t, ok, family.String())
		assert.Equal(t, family, parsed)
	}

	_, ok := ParsePaletteFamily("teal")
	assert.False(t, ok)
}

func TestPaletteShadeValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50, PaletteShade50.Value())
	assert.Equal(t, 400, PaletteShade400.Value())
	assert.Equal(t, 900, PaletteShade900.Value())

	shade, ok := ParsePaletteShade(700)
	require.True(t, ok)
	assert.Equal(t, PaletteShade700, shade)

	_, ok = ParsePaletteShade(450)
	assert.False(t, ok)
	_, ok = ParsePaletteShade(1000)
	assert.False(t, ok)
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	t.Parallel()

	view := VStack(NewText("one"), nil, NewText(""), NewText("two")).View()
	assert.Equal(t, "one\ntwo", ansi.Strip(view))

	view = HStack(NewText("a"), NewText("b")).WithGap(1).View()
	assert.Equal(t, "a b", ansi.Strip(view))
}

func TestStackGapInsertsBlankLines(t *testing.T) {
	t.Parallel()

	view := VStack(NewText("one"), NewText("two")).WithGap(1).View()
	lines := strings.Split(ansi.Strip(view), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "one", lines[0])
	assert.Empty(t, strings.TrimSpace(lines[1]))
	assert.Equal(t, "two", lines[2])
}

func TestTextWrapsToContextWidth(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithWidth(10)
	view := NewText("the quick brown fox jumps").ViewWithContext(ctx)
	for _, line := range strings.Split(ansi.Strip(view), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 10)
	}
}

func TestCalloutPlacesIconInHeaderWhenTitled(t *testing.T) {
	t.Parallel()

	view := ansi.Strip(NewCallout(NewText("body")).WithIcon("!").WithTitle("Heads up").View())
	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[1], "! Heads up")
	assert.Contains(t, lines[2], "body")
}

func TestCalloutLeadsBodyWithIconWhenUntitled(t *testing.T) {
	t.Parallel()

	view := ansi.Strip(NewCallout(NewText("body")).WithIcon("!").View())
	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[1], "! body")
}

func TestCardFillsWidth(t *testing.T) {
	t.Parallel()

	view := NewCard(NewText("hi")).ViewWithContext(DefaultContext().WithWidth(20))
	for _, line := range strings.Split(ansi.Strip(view), "\n") {
		assert.Equal(t, 20, ansi.StringWidth(line))
	}
}

func TestQuoteDrawsLeftRuleOnly(t *testing.T) {
	t.Parallel()

	view := ansi.Strip(NewQuote(NewText("said")).View())
	assert.Equal(t, "┃ said ", view)
}

func TestButtonLabel(t *testing.T) {
	t.Parallel()

	button := NewButton("Copy").WithFocused(true)
	assert.True(t, button.IsFocused())
	assert.Contains(t, ansi.Strip(button.View()), "[ Copy ]")
}

func TestBadgePadsText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " #go ", ansi.Strip(NewBadge("#go").View()))
	assert.Equal(t, " 3 ", ansi.Strip(MarkerBadge("3", false).View()))
}

func TestHStackNarrowsLaterColumns(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithWidth(12)
	view := HStack(NewText(">"), NewText("alpha beta gamma")).WithGap(1).ViewWithContext(ctx)
	for _, line := range strings.Split(ansi.Strip(view), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 12)
	}
	assert.Contains(t, ansi.Strip(view), "> alpha beta")
}
