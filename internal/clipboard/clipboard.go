// Package clipboard provides the clipboard write primitive copy blocks use.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable reports that no clipboard mechanism accepted the write.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer writes text to a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) Write(ctx context.Context, text string) error {
	return f(ctx, text)
}

// System writes to the native clipboard and falls back to an OSC 52
// escape sequence on the controlling terminal, which also reaches the
// local clipboard across SSH.
type System struct {
	native      func(string) error
	unsupported bool
	terminal    func() (io.WriteCloser, error)
	getenv      func(string) string
}

// SystemOption configures a System clipboard.
type SystemOption func(*System)

// WithTerminal replaces the terminal the OSC 52 fallback writes to.
func WithTerminal(open func() (io.WriteCloser, error)) SystemOption {
	return func(s *System) { s.terminal = open }
}

// WithNative replaces the native clipboard call. A nil fn disables it.
func WithNative(fn func(string) error) SystemOption {
	return func(s *System) {
		s.native = fn
		s.unsupported = fn == nil
	}
}

// WithEnv replaces the environment lookup used to detect tmux and screen.
func WithEnv(getenv func(string) string) SystemOption {
	return func(s *System) { s.getenv = getenv }
}

// NewSystem returns the host clipboard.
func NewSystem(opts ...SystemOption) *System {
	s := &System{
		native:      sysclip.WriteAll,
		unsupported: sysclip.Unsupported,
		terminal:    openTTY,
		getenv:      os.Getenv,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func openTTY() (io.WriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

// Write copies text. It tries the native clipboard first and the terminal
// second; the error wraps ErrUnavailable when both fail.
func (s *System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var nativeErr error
	if !s.unsupported && s.native != nil {
		if nativeErr = s.native(text); nativeErr == nil {
			return nil
		}
	}

	if err := s.writeOSC52(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, errors.Join(nativeErr, err))
	}
	return nil
}

func (s *System) writeOSC52(text string) error {
	if s.terminal == nil {
		return errors.New("no terminal")
	}
	tty, err := s.terminal()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	seq := osc52.New(text)
	term := s.getenv("TERM")
	switch {
	case s.getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(tty); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard that records every write.
type Memory struct {
	mu     sync.Mutex
	writes []string
	err    error
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Write records text, or returns the configured failure.
func (m *Memory) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, text)
	return nil
}

// FailWith makes subsequent writes fail with err; nil restores success.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Writes returns every successful write in order.
func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

// Last returns the most recent successful write.
func (m *Memory) Last() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return "", false
	}
	return m.writes[len(m.writes)-1], true
}
