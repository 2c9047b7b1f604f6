// Package components provides the theme-aware lipgloss building blocks the
// terminal backend draws sections with.
//
// # Architecture
//
// The component system has three layers:
//
//  1. Theme Layer - Immutable theme definitions (semantic slots, Tailwind colour scales, typography)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Component Layer - Composable UI elements that render to strings
//
// Themes are passed explicitly through RenderContext together with the
// lipgloss renderer that decides the colour profile:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme()).WithWidth(80)
//	output := component.ViewWithContext(ctx)
//
// # Components
//
//   - Text: styled, word-wrapped text; RawText for pre-rendered ANSI
//   - Stack: vertical or horizontal arrangement with gaps
//   - Box: frame with border, fill and padding; NewCard and NewQuote presets
//   - Callout: bordered block with an icon and optional title row
//   - Badge: small pill for hashtags and step markers
//   - Button: action label with focus state
//
// # Colours
//
// The Tailwind scale mirrors the class tokens produced by the style resolver,
// so "border-red-400" resolves to PaletteColor(theme, PaletteRed, PaletteShade400).
package components
