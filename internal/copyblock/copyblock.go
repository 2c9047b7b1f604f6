// Package copyblock holds the idle/copied state of a prompt block and the
// single timer that returns it to idle.
package copyblock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/clipboard"
	"github.com/alexisbeaulieu97/folio/internal/clock"
)

// ResetDelay is how long a block shows its copied confirmation.
const ResetDelay = 2 * time.Second

// ErrDisposed is returned by Copy after Dispose.
var ErrDisposed = errors.New("copy block disposed")

// State is the feedback state of a block.
type State int

const (
	StateIdle State = iota
	StateCopied
)

func (s State) String() string {
	if s == StateCopied {
		return "copied"
	}
	return "idle"
}

// Controller copies one block's literal content and tracks the feedback state.
type Controller struct {
	content   string
	clipboard clipboard.Writer
	clock     clock.Clock
	delay     time.Duration
	observers []func(State)

	mu         sync.Mutex
	state      State
	timer      *clock.Timer
	generation uint64
	disposed   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the real clock.
func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.clock = c
		}
	}
}

// WithDelay replaces ResetDelay. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.delay = d
		}
	}
}

// WithObserver registers fn to be called on every state change. It runs on
// the caller's goroutine for Copy and on the clock's goroutine for resets.
func WithObserver(fn func(State)) Option {
	return func(ctl *Controller) {
		if fn != nil {
			ctl.observers = append(ctl.observers, fn)
		}
	}
}

// New returns an idle controller for content.
func New(content string, clip clipboard.Writer, opts ...Option) *Controller {
	c := &Controller{
		content:   content,
		clipboard: clip,
		clock:     clock.Real(),
		delay:     ResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy writes the block's content to the clipboard. Only a successful write
// moves the block to copied; it then stays copied until the delay has passed
// since the most recent successful Copy. A failed write leaves the state as
// it was and returns the error for the host to log.
func (c *Controller) Copy(ctx context.Context) error {
	c.mu.Lock()
	disposed := c.disposed
	c.mu.Unlock()
	if disposed {
		return ErrDisposed
	}
	if c.clipboard == nil {
		return fmt.Errorf("copy to clipboard: %w", clipboard.ErrUnavailable)
	}

	if err := c.clipboard.Write(ctx, c.content); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrDisposed
	}
	c.timer.Stop()
	c.timer = nil
	c.generation++
	gen := c.generation
	changed := c.state != StateCopied
	c.state = StateCopied
	c.mu.Unlock()

	if changed {
		c.notify(StateCopied)
	}

	timer := c.clock.AfterFunc(c.delay, func() { c.expire(gen) })

	c.mu.Lock()
	if c.generation == gen && !c.disposed {
		c.timer = timer
	} else {
		timer.Stop()
	}
	c.mu.Unlock()
	return nil
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if c.disposed || gen != c.generation || c.state != StateCopied {
		c.mu.Unlock()
		return
	}
	c.state = StateIdle
	c.timer = nil
	c.mu.Unlock()

	c.notify(StateIdle)
}

func (c *Controller) notify(state State) {
	for _, fn := range c.observers {
		fn(state)
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Copied reports whether the block shows its confirmation.
func (c *Controller) Copied() bool {
	return c.State() == StateCopied
}

// Content returns the literal text the block copies.
func (c *Controller) Content() string {
	return c.content
}

// Dispose cancels the pending reset and returns the block to idle. Later
// timer callbacks do nothing and later Copy calls return ErrDisposed.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.disposed = true
	c.timer.Stop()
	c.timer = nil
	c.generation++
	c.state = StateIdle
}
