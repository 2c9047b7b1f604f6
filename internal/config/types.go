package config

import (
	"github.com/rs/zerolog"
)

// Output formats accepted by render.format.
const (
	FormatANSI = "ansi"
	FormatHTML = "html"
	FormatJSON = "json"
)

// Colour modes accepted by render.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Markdown engines accepted by render.markdown.
const (
	MarkdownNative  = "native"
	MarkdownGlamour = "glamour"
)

// Config is the user configuration file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Copy   CopyConfig   `yaml:"copy"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Human bool   `yaml:"human"`
}

// RenderConfig holds output defaults that command-line flags override.
type RenderConfig struct {
	Format          string `yaml:"format" validate:"omitempty,oneof=ansi html json"`
	Width           int    `yaml:"width" validate:"gte=0,lte=400"`
	Theme           string `yaml:"theme" validate:"omitempty,theme"`
	Color           string `yaml:"color" validate:"omitempty,oneof=auto always never"`
	Markdown        string `yaml:"markdown" validate:"omitempty,oneof=native glamour"`
	Highlight       *bool  `yaml:"highlight"`
	AuthorNoteTitle string `yaml:"authorNoteTitle" validate:"max=80"`
	SecretLabel     string `yaml:"secretLabel" validate:"max=40"`
}

// CopyConfig tunes copy blocks.
type CopyConfig struct {
	// ResetAfter is how long a copied block shows its confirmation.
	ResetAfter Duration `yaml:"resetAfter"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	highlight := true
	return Config{
		Log: LogConfig{Level: "info"},
		Render: RenderConfig{
			Format:    FormatANSI,
			Theme:     "dark",
			Color:     ColorAuto,
			Markdown:  MarkdownNative,
			Highlight: &highlight,
		},
	}
}

// ZerologLevel maps the configured level, defaulting to info.
func (c LogConfig) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		return zerolog.InfoLevel
	}
	return level
}

// HighlightEnabled reports whether code blocks get syntax colours.
func (c RenderConfig) HighlightEnabled() bool {
	return c.Highlight == nil || *c.Highlight
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Render.Format == "" {
		c.Render.Format = def.Render.Format
	}
	if c.Render.Theme == "" {
		c.Render.Theme = def.Render.Theme
	}
	if c.Render.Color == "" {
		c.Render.Color = def.Render.Color
	}
	if c.Render.Markdown == "" {
		c.Render.Markdown = def.Render.Markdown
	}
	if c.Render.Highlight == nil {
		c.Render.Highlight = def.Render.Highlight
	}
}
