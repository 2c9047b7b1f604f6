package compose

import (
	"time"

	"github.com/alexisbeaulieu97/folio/internal/clipboard"
	"github.com/alexisbeaulieu97/folio/internal/clock"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/copyblock"
	"github.com/alexisbeaulieu97/folio/internal/node"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/tutorial"
)

// Block is an interactive section of a mounted document together with the
// controller that owns its state. Exactly one of Step and Copy is set.
type Block struct {
	Index   int
	Section content.Section
	Step    *tutorial.Controller
	Copy    *copyblock.Controller
}

// View is a mounted document. It owns one controller per interactive
// section; mounting the same document again yields fresh controllers.
type View struct {
	composer *Composer
	doc      content.Document
	blocks   []Block
	byIndex  map[int]Block
}

// MountOption configures a View.
type MountOption func(*mountConfig)

type mountConfig struct {
	clock  clock.Clock
	delay  time.Duration
	onStep func(index int, state tutorial.State)
	onCopy func(index int, state copyblock.State)
}

// WithClock drives copy-block resets from c.
func WithClock(c clock.Clock) MountOption {
	return func(cfg *mountConfig) { cfg.clock = c }
}

// WithCopyDelay replaces copyblock.ResetDelay for every block.
func WithCopyDelay(d time.Duration) MountOption {
	return func(cfg *mountConfig) { cfg.delay = d }
}

// WithStepObserver is told about every toggle, keyed by section index.
func WithStepObserver(fn func(index int, state tutorial.State)) MountOption {
	return func(cfg *mountConfig) { cfg.onStep = fn }
}

// WithCopyObserver is told about every copy-block state change, keyed by
// section index. Resets arrive on the clock's goroutine.
func WithCopyObserver(fn func(index int, state copyblock.State)) MountOption {
	return func(cfg *mountConfig) { cfg.onCopy = fn }
}

// Mount creates the controllers for doc. Copy blocks write to clip.
func (c *Composer) Mount(doc content.Document, clip clipboard.Writer, opts ...MountOption) *View {
	var cfg mountConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &View{
		composer: c,
		doc:      doc,
		byIndex:  make(map[int]Block),
	}

	for i, sec := range doc.Sections {
		block := Block{Index: i, Section: sec}
		switch sec.Type {
		case content.TypeTutorialStep:
			var stepOpts []tutorial.Option
			if cfg.onStep != nil {
				index, fn := i, cfg.onStep
				stepOpts = append(stepOpts, tutorial.WithObserver(func(s tutorial.State) { fn(index, s) }))
			}
			block.Step = tutorial.New(sec.StepNumber, stepOpts...)
		case content.TypePrompt:
			copyOpts := []copyblock.Option{copyblock.WithClock(cfg.clock), copyblock.WithDelay(cfg.delay)}
			if cfg.onCopy != nil {
				index, fn := i, cfg.onCopy
				copyOpts = append(copyOpts, copyblock.WithObserver(func(s copyblock.State) { fn(index, s) }))
			}
			block.Copy = copyblock.New(sec.Content, clip, copyOpts...)
		default:
			continue
		}
		v.blocks = append(v.blocks, block)
		v.byIndex[i] = block
	}
	return v
}

// Mount uses a default Composer.
func Mount(doc content.Document, clip clipboard.Writer, opts ...MountOption) *View {
	return New().Mount(doc, clip, opts...)
}

// Document returns the mounted document.
func (v *View) Document() content.Document {
	return v.doc
}

// Render renders the document with the controllers' current state.
func (v *View) Render() *node.Node {
	doc, _ := v.composer.compose(v.doc.Sections, v.controls)
	return doc
}

// RenderKeyed is Render plus the node key of every rendered section index.
// Hosts use the keys to locate a block in the rendered output.
func (v *View) RenderKeyed() (*node.Node, map[int]string) {
	return v.composer.compose(v.doc.Sections, v.controls)
}

func (v *View) controls(index int) render.Controls {
	block, ok := v.byIndex[index]
	if !ok {
		return render.Controls{}
	}
	var ctl render.Controls
	if block.Step != nil {
		ctl.Step = block.Step
	}
	if block.Copy != nil {
		ctl.Copy = block.Copy
	}
	return ctl
}

// Interactive returns the focusable blocks in document order.
func (v *View) Interactive() []Block {
	return append([]Block(nil), v.blocks...)
}

// Block returns the interactive block for a section index.
func (v *View) Block(index int) (Block, bool) {
	block, ok := v.byIndex[index]
	return block, ok
}

// Steps returns the tutorial step controllers in document order.
func (v *View) Steps() []*tutorial.Controller {
	var steps []*tutorial.Controller
	for _, block := range v.blocks {
		if block.Step != nil {
			steps = append(steps, block.Step)
		}
	}
	return steps
}

// CopyBlocks returns the copy-block controllers in document order.
func (v *View) CopyBlocks() []*copyblock.Controller {
	var blocks []*copyblock.Controller
	for _, block := range v.blocks {
		if block.Copy != nil {
			blocks = append(blocks, block.Copy)
		}
	}
	return blocks
}

// Dispose cancels every pending copy reset. The view must not be used afterwards.
func (v *View) Dispose() {
	for _, block := range v.blocks {
		if block.Copy != nil {
			block.Copy.Dispose()
		}
	}
}
