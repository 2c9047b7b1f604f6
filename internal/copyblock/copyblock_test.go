package copyblock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alexisbeaulieu97/folio/internal/clipboard"
	"github.com/alexisbeaulieu97/folio/internal/clock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	states []State
}

func (r *recorder) observe(s State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) seen() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.states...)
}

func TestCopyThenResetAfterTwoSeconds(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(epoch)
	clip := clipboard.NewMemory()
	ctl := New("echo hi", clip, WithClock(fake))

	require.Equal(t, StateIdle, ctl.State())
	require.NoError(t, ctl.Copy(context.Background()))
	assert.True(t, ctl.Copied(), "copied immediately after a successful write")

	fake.Advance(1999 * time.Millisecond)
	assert.True(t, ctl.Copied())

	fake.Advance(time.Millisecond)
	assert.False(t, ctl.Copied())
	assert.Equal(t, StateIdle, ctl.State())

	assert.Equal(t, []string{"echo hi"}, clip.Writes())
}

func TestSecondCopyResetsTimer(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(epoch)
	rec := &recorder{}
	ctl := New("ls", clipboard.NewMemory(), WithClock(fake), WithObserver(rec.observe))

	require.NoError(t, ctl.Copy(context.Background()))
	fake.Advance(time.Second)
	require.NoError(t, ctl.Copy(context.Background()))
	assert.Equal(t, 1, fake.Pending(), "the first timer is cancelled, not stacked")

	fake.Advance(1500 * time.Millisecond)
	assert.True(t, ctl.Copied(), "two seconds after the first copy the block is still copied")

	fake.Advance(500 * time.Millisecond)
	assert.False(t, ctl.Copied(), "idle exactly two seconds after the second copy")

	fake.Advance(time.Minute)
	assert.Equal(t, []State{StateCopied, StateIdle}, rec.seen(), "exactly one idle transition")
}

func TestFailedWriteLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(epoch)
	clip := clipboard.NewMemory()
	denied := errors.New("permission denied")
	clip.FailWith(denied)
	rec := &recorder{}
	ctl := New("secret", clip, WithClock(fake), WithObserver(rec.observe))

	err := ctl.Copy(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, denied)
	assert.Equal(t, StateIdle, ctl.State())
	assert.Zero(t, fake.Pending())
	assert.Empty(t, rec.seen())
	assert.Empty(t, clip.Writes())
}

func TestFailedWriteWhileCopiedKeepsTimer(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(epoch)
	clip := clipboard.NewMemory()
	ctl := New("x", clip, WithClock(fake))

	require.NoError(t, ctl.Copy(context.Background()))
	clip.FailWith(errors.New("busy"))
	fake.Advance(time.Second)
	require.Error(t, ctl.Copy(context.Background()))
	assert.True(t, ctl.Copied())

	fake.Advance(time.Second)
	assert.False(t, ctl.Copied(), "the reset still follows the last successful copy")
}

func TestDispose(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(epoch)
	clip := clipboard.NewMemory()
	rec := &recorder{}
	ctl := New("x", clip, WithClock(fake), WithObserver(rec.observe))

	require.NoError(t, ctl.Copy(context.Background()))
	ctl.Dispose()
	ctl.Dispose()

	assert.Equal(t, StateIdle, ctl.State())
	assert.Zero(t, fake.Pending(), "dispose cancels the pending reset")

	fake.Advance(time.Minute)
	assert.Equal(t, []State{StateCopied}, rec.seen())

	assert.ErrorIs(t, ctl.Copy(context.Background()), ErrDisposed)
	assert.Equal(t, []string{"x"}, clip.Writes(), "a disposed block never touches the clipboard")
}

func TestCopyHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctl := New("x", clipboard.NewMemory(), WithClock(clock.Fake(epoch)))
	assert.ErrorIs(t, ctl.Copy(ctx), context.Canceled)
	assert.False(t, ctl.Copied())
}

func TestCopyWithoutClipboard(t *testing.T) {
	t.Parallel()

	ctl := New("x", nil)
	assert.ErrorIs(t, ctl.Copy(context.Background()), clipboard.ErrUnavailable)
}

func TestWithDelay(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(epoch)
	ctl := New("x", clipboard.NewMemory(), WithClock(fake), WithDelay(500*time.Millisecond), WithDelay(0))

	require.NoError(t, ctl.Copy(context.Background()))
	fake.Advance(500 * time.Millisecond)
	assert.False(t, ctl.Copied())
}

func TestRealClockResets(t *testing.T) {
	t.Parallel()

	ctl := New("x", clipboard.NewMemory(), WithDelay(10*time.Millisecond))
	require.NoError(t, ctl.Copy(context.Background()))
	assert.Eventually(t, func() bool { return !ctl.Copied() }, 5*time.Second, 5*time.Millisecond)
}

func TestIndependentBlocks(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(epoch)
	clip := clipboard.NewMemory()
	a := New("a", clip, WithClock(fake))
	b := New("b", clip, WithClock(fake))

	require.NoError(t, a.Copy(context.Background()))
	assert.True(t, a.Copied())
	assert.False(t, b.Copied())
	assert.Equal(t, "a", a.Content())
}
