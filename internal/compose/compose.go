// Package compose renders a whole document: it filters intro sections,
// renders the rest in author order, and owns the interactive controllers
// of a mounted document.
package compose

import (
	"fmt"
	"runtime/debug"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/render"
)

// FailedSectionText replaces the body of a section whose rendering panicked.
const FailedSectionText = "This section could not be displayed."

// SectionRenderer renders a single section.
type SectionRenderer interface {
	Render(sec content.Section, ctl render.Controls) *node.Node
}

// Composer turns section lists into document trees.
type Composer struct {
	renderer SectionRenderer
	log      *logger.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithRenderer replaces the default section renderer.
func WithRenderer(r SectionRenderer) Option {
	return func(c *Composer) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithLogger sets the logger recovered panics and unknown types are reported to.
func WithLogger(log *logger.Logger) Option {
	return func(c *Composer) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Composer.
func New(opts ...Option) *Composer {
	c := &Composer{
		renderer: render.New(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render renders sections with a default Composer.
func Render(sections []content.Section) *node.Node {
	return New().Render(sections)
}

// Render renders sections with every controller in its initial state.
func (c *Composer) Render(sections []content.Section) *node.Node {
	doc, _ := c.compose(sections, func(int) render.Controls { return render.Controls{} })
	return doc
}

// compose also returns the key each rendered section index ended up with.
func (c *Composer) compose(sections []content.Section, controls func(index int) render.Controls) (*node.Node, map[int]string) {
	doc := node.New(node.KindDocument)
	seen := make(map[string]struct{}, len(sections))
	keys := make(map[int]string, len(sections))

	for i, sec := range sections {
		if sec.Type == content.TypeIntro {
			continue
		}
		if !sec.Type.Known() {
			c.log.WithFields(map[string]any{"index": i, "type": string(sec.Type)}).
				Debug("unknown section type, rendering as callout")
		}

		out := c.section(i, sec, controls(i))
		if out == nil {
			continue
		}

		key := out.Key
		if key == "" {
			key = blockKey(i)
		}
		if _, dup := seen[key]; dup {
			key = fmt.Sprintf("%s-%d", key, i)
		}
		seen[key] = struct{}{}
		keys[i] = key
		doc.Append(out.WithKey(key))
	}
	return doc, keys
}

func (c *Composer) section(index int, sec content.Section, ctl render.Controls) (out *node.Node) {
	defer func() {
		if r := recover(); r != nil {
			c.log.WithFields(map[string]any{
				"index": index,
				"type":  string(sec.Type),
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Warn("section rendering panicked")
			out = failed(index, sec)
		}
	}()
	return c.renderer.Render(sec, ctl)
}

func failed(index int, sec content.Section) *node.Node {
	return node.New(node.KindError, node.TextNode(FailedSectionText)).
		WithKey(blockKey(index)).
		WithClass("section-error").
		WithAttr(node.AttrType, string(sec.Type))
}

func blockKey(index int) string {
	return fmt.Sprintf("block-%d", index)
}
