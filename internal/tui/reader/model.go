// Package reader is the interactive terminal reader: it shows a mounted
// document in a scrollable viewport and lets the user move focus between
// tutorial steps and copy blocks.
package reader

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/clipboard"
	"github.com/alexisbeaulieu97/folio/internal/compose"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/copyblock"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/output/terminal"
)

// Loader fetches the current version of the document being read.
type Loader func(ctx context.Context) (content.Document, error)

// Model is the Bubbletea state of the reader.
type Model struct {
	keys     KeyMap
	help     help.Model
	viewport viewport.Model

	composer  *compose.Composer
	clip      clipboard.Writer
	mountOpts []compose.MountOption
	newRender func(width int) *terminal.Renderer
	renderer  *terminal.Renderer

	view      *compose.View
	layout    terminal.Layout
	blockKeys map[int]string
	focus     int

	events  chan struct{}
	changes <-chan struct{}
	load    Loader

	status    string
	statusErr bool
	statusSeq int

	width  int
	height int
	ready  bool

	log *logger.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces DefaultKeyMap.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithComposer replaces the default composer.
func WithComposer(c *compose.Composer) Option {
	return func(m *Model) {
		if c != nil {
			m.composer = c
		}
	}
}

// WithRenderer sets how a terminal renderer is built for a window width.
func WithRenderer(fn func(width int) *terminal.Renderer) Option {
	return func(m *Model) {
		if fn != nil {
			m.newRender = fn
		}
	}
}

// WithMountOptions passes options to every mount of the document.
func WithMountOptions(opts ...compose.MountOption) Option {
	return func(m *Model) { m.mountOpts = append(m.mountOpts, opts...) }
}

// WithReload remounts the document with load's result each time changes fires.
func WithReload(changes <-chan struct{}, load Loader) Option {
	return func(m *Model) {
		m.changes = changes
		m.load = load
	}
}

// WithLogger sets the logger used for reload and clipboard failures.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// New mounts doc. Copy blocks write to clip.
func New(doc content.Document, clip clipboard.Writer, opts ...Option) Model {
	m := Model{
		keys:     DefaultKeyMap,
		help:     help.New(),
		viewport: viewport.New(0, 0),
		composer: compose.New(),
		clip:     clip,
		newRender: func(width int) *terminal.Renderer {
			return terminal.New(io.Discard, terminal.WithWidth(width))
		},
		events: make(chan struct{}, 1),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.renderer = m.newRender(terminal.DefaultWidth)
	m.mount(doc)
	return m
}

func (m *Model) mount(doc content.Document) {
	events := m.events
	opts := append([]compose.MountOption{
		compose.WithCopyObserver(func(int, copyblock.State) {
			select {
			case events <- struct{}{}:
			default:
			}
		}),
	}, m.mountOpts...)

	if m.view != nil {
		m.view.Dispose()
	}
	m.view = m.composer.Mount(doc, m.clip, opts...)

	if n := len(m.view.Interactive()); m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 && len(m.view.Interactive()) > 0 {
		m.focus = 0
	}
}

// Init starts listening for controller and file changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForRefresh(m.events), waitForReload(m.changes, m.load))
}

// Focused returns the block that currently has focus.
func (m Model) Focused() (compose.Block, bool) {
	blocks := m.view.Interactive()
	if m.focus < 0 || m.focus >= len(blocks) {
		return compose.Block{}, false
	}
	return blocks[m.focus], true
}

// Document returns the mounted document.
func (m Model) Document() content.Document {
	return m.view.Document()
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Close releases the mounted document's pending timers.
func (m Model) Close() {
	m.view.Dispose()
}

// StepsDone counts completed tutorial steps.
func (m Model) StepsDone() (done, total int) {
	for _, step := range m.view.Steps() {
		total++
		if step.Done() {
			done++
		}
	}
	return done, total
}
