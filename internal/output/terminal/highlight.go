package terminal

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// code renders a code block, highlighted with chroma when the language is
// known or can be detected. Content is never altered, only coloured.
func (r *Renderer) code(text, lang string) string {
	if highlighted, ok := r.highlightCode(text, lang); ok {
		return highlighted
	}
	return r.typography(components.TypographyVariantCode).Render(text)
}

func (r *Renderer) highlightCode(text, lang string) (string, bool) {
	if !r.highlight || text == "" {
		return "", false
	}

	var formatter string
	switch r.Profile() {
	case termenv.TrueColor:
		formatter = "terminal16m"
	case termenv.ANSI256:
		formatter = "terminal256"
	case termenv.ANSI:
		formatter = "terminal16"
	default:
		return "", false
	}

	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	styleName := "github"
	if r.theme.Dark {
		styleName = "monokai"
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", false
	}
	var b strings.Builder
	if err := formatters.Get(formatter).Format(&b, chromastyles.Get(styleName), iterator); err != nil {
		return "", false
	}
	return trimAddedNewline(b.String(), text), true
}

// trimAddedNewline drops the final newline lexers append to sources that
// lack one, along with any escape codes trailing it.
func trimAddedNewline(out, source string) string {
	if strings.HasSuffix(source, "\n") {
		return out
	}
	i := strings.LastIndex(out, "\n")
	if i < 0 || ansi.Strip(out[i+1:]) != "" {
		return out
	}
	return out[:i] + out[i+1:]
}
