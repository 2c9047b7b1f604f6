// Package tutorial holds the done/pending state of one tutorial step.
package tutorial

import "sync"

// State is the progress of a step.
type State int

const (
	StatePending State = iota
	StateDone
)

func (s State) String() string {
	if s == StateDone {
		return "done"
	}
	return "pending"
}

// Controller owns the state of a single step. Steps never share state and
// nothing is persisted: a fresh controller always starts pending.
type Controller struct {
	mu        sync.Mutex
	step      int
	state     State
	observers []func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers fn to be called after every toggle.
func WithObserver(fn func(State)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// New returns a pending controller for the given step number.
func New(stepNumber int, opts ...Option) *Controller {
	c := &Controller{step: stepNumber}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Toggle flips pending and done and returns the new state.
func (c *Controller) Toggle() State {
	c.mu.Lock()
	if c.state == StateDone {
		c.state = StatePending
	} else {
		c.state = StateDone
	}
	state := c.state
	observers := c.observers
	c.mu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
	return state
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done reports whether the step is marked done.
func (c *Controller) Done() bool {
	return c.State() == StateDone
}

// StepNumber returns the author-assigned step number.
func (c *Controller) StepNumber() int {
	return c.step
}
