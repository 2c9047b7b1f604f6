// Package render turns one section into a presentation node. Rendering is a
// pure function of the section and the read-only controller state handed in.
package render

import (
	"regexp"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/icons"
	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/styles"
)

const (
	DefaultAuthorNoteTitle = "Author's note"
	DefaultSecretLabel     = "Confidential"
)

// HashtagPattern matches a hash followed by letters, marks, digits or underscores in any script.
var HashtagPattern = regexp.MustCompile(`#[\p{L}\p{M}\p{N}_]+`)

// StepState is the read-only view of a tutorial step controller.
type StepState interface {
	Done() bool
}

// CopyState is the read-only view of a copy-block controller.
type CopyState interface {
	Copied() bool
}

// Controls carries the state of the controllers owning a section. A nil
// field means the controller is in its initial state.
type Controls struct {
	Step StepState
	Copy CopyState
}

func (c Controls) stepDone() bool {
	return c.Step != nil && c.Step.Done()
}

func (c Controls) copied() bool {
	return c.Copy != nil && c.Copy.Copied()
}

// Renderer maps sections to presentation nodes.
type Renderer struct {
	authorNoteTitle string
	secretLabel     string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAuthorNoteTitle replaces the header shown on untitled author comments.
func WithAuthorNoteTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.authorNoteTitle = title
		}
	}
}

// WithSecretLabel replaces the label drawn on secret cards.
func WithSecretLabel(label string) Option {
	return func(r *Renderer) {
		if label != "" {
			r.secretLabel = label
		}
	}
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		authorNoteTitle: DefaultAuthorNoteTitle,
		secretLabel:     DefaultSecretLabel,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the node for sec, or nil when the section draws nothing
// (a hashtag section without a single tag). Every returned node carries the
// raw section type in its data-type attribute.
func (r *Renderer) Render(sec content.Section, ctl Controls) *node.Node {
	var out *node.Node

	switch sec.Type {
	case content.TypeTutorialStep:
		out = r.tutorialStep(sec, ctl.stepDone())
	case content.TypeHashtags:
		out = r.hashtags(sec)
	case content.TypeIntro:
		out = r.intro(sec)
	case content.TypePrompt:
		out = r.copyBlock(sec, ctl.copied())
	case content.TypeCTA:
		out = r.cta(sec)
	case content.TypeOpinion, content.TypeQuote:
		out = r.blockquote(sec)
	case content.TypeAuthorComment:
		out = r.authorComment(sec)
	case content.TypeSecret:
		out = r.secret(sec)
	case content.TypeImage:
		out = r.image(sec)
	case content.TypeSection, content.TypeSarcasm, content.TypeWarning,
		content.TypeTip, content.TypeFact, content.TypeGraph:
		out = r.callout(sec)
	default:
		out = r.callout(sec)
	}

	if out == nil {
		return nil
	}
	return out.WithAttr(node.AttrType, string(sec.Type))
}

// Hashtags extracts the tags of a hashtag section in order, duplicates kept.
func Hashtags(text string) []string {
	return HashtagPattern.FindAllString(text, -1)
}

func iconNode(icon icons.Icon, classes ...string) *node.Node {
	if icon.IsNone() {
		return nil
	}
	return node.New(node.KindIcon).
		WithText(icon.Glyph).
		WithAttr(node.AttrIcon, icon.Slug).
		WithClass("icon", "icon-"+icon.Slug).
		WithClass(classes...)
}

func sectionIcon(sec content.Section, style styles.Style, classes ...string) *node.Node {
	return iconNode(styles.Icon(sec.Type, sec.Icon), append([]string{style.Accent.Class("text")}, classes...)...)
}

func paragraph(text string, classes ...string) *node.Node {
	return node.New(node.KindParagraph, node.Lines(text)...).WithClass(classes...)
}
