package main

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/folio/internal/compose"
	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/output/terminal"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// renderFlags override the render section of the configuration file.
type renderFlags struct {
	format      string
	width       int
	theme       string
	color       string
	markdown    string
	noHighlight bool
}

func (f *renderFlags) register(cmd *cobra.Command, withFormat bool) {
	if withFormat {
		cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: ansi, html or json")
	}
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "Column budget for ansi output (default: terminal width)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "Colour theme: dark or light")
	cmd.Flags().StringVar(&f.color, "color", "", "Colour mode: auto, always or never")
	cmd.Flags().StringVar(&f.markdown, "markdown", "", "Markdown engine for callouts: native or glamour")
	cmd.Flags().BoolVar(&f.noHighlight, "no-highlight", false, "Disable syntax highlighting of code blocks")
}

// apply layers explicitly set flags over cfg and validates the result.
func (f *renderFlags) apply(cmd *cobra.Command, cfg config.Config) (config.RenderConfig, error) {
	out := cfg.Render
	changed := cmd.Flags().Changed
	if changed("format") {
		out.Format = f.format
	}
	if changed("width") {
		out.Width = f.width
	}
	if changed("theme") {
		out.Theme = f.theme
	}
	if changed("color") {
		out.Color = f.color
	}
	if changed("markdown") {
		out.Markdown = f.markdown
	}
	if f.noHighlight {
		highlight := false
		out.Highlight = &highlight
	}

	cfg.Render = out
	if err := config.ValidateConfig(&cfg); err != nil {
		return config.RenderConfig{}, err
	}
	return out, nil
}

func newComposer(rc config.RenderConfig, log *logger.Logger) *compose.Composer {
	return compose.New(
		compose.WithRenderer(render.New(
			render.WithAuthorNoteTitle(rc.AuthorNoteTitle),
			render.WithSecretLabel(rc.SecretLabel),
		)),
		compose.WithLogger(log),
	)
}

// terminalOptions builds renderer options for output written to w.
func terminalOptions(rc config.RenderConfig, w io.Writer) ([]terminal.Option, error) {
	theme, err := components.ThemeByName(rc.Theme)
	if err != nil {
		return nil, err
	}
	return []terminal.Option{
		terminal.WithTheme(theme),
		terminal.WithProfile(colorProfile(rc.Color, w)),
		terminal.WithWidth(outputWidth(rc.Width, w)),
		terminal.WithGlamour(rc.Markdown == config.MarkdownGlamour),
		terminal.WithHighlight(rc.HighlightEnabled()),
	}, nil
}

func colorProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		if profile := termenv.NewOutput(w).EnvColorProfile(); profile != termenv.Ascii {
			return profile
		}
		return termenv.ANSI256
	default:
		if !isTerminal(w) {
			return termenv.Ascii
		}
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

func outputWidth(configured int, w io.Writer) int {
	if configured > 0 {
		return configured
	}
	if file, ok := w.(*os.File); ok && isTerminal(w) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return terminal.DefaultWidth
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
