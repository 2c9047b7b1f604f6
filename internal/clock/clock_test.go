package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeAfterFuncFiresAtDeadline(t *testing.T) {
	t.Parallel()

	c := Fake(epoch)
	fired := 0
	c.AfterFunc(2*time.Second, func() { fired++ })
	require.Equal(t, 1, c.Pending())

	c.Advance(1999 * time.Millisecond)
	assert.Equal(t, 0, fired)

	c.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, c.Pending())
	assert.Equal(t, epoch.Add(2*time.Second), c.Now())

	c.Advance(time.Hour)
	assert.Equal(t, 1, fired, "one-shot timers fire once")
}

func TestFakeStop(t *testing.T) {
	t.Parallel()

	c := Fake(epoch)
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(time.Minute)
	assert.False(t, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	t.Parallel()

	c := Fake(epoch)
	var order []int
	c.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	c.AfterFunc(1*time.Second, func() { order = append(order, 1) })
	c.AfterFunc(2*time.Second, func() { order = append(order, 2) })

	c.Advance(5 * time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestFakeCallbackCanSchedule(t *testing.T) {
	t.Parallel()

	c := Fake(epoch)
	fired := 0
	c.AfterFunc(time.Second, func() {
		fired++
		c.AfterFunc(time.Second, func() { fired++ })
	})

	c.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, c.Pending())
	c.Advance(time.Second)
	assert.Equal(t, 2, fired)
}

func TestNilTimerStop(t *testing.T) {
	t.Parallel()

	var timer *Timer
	assert.False(t, timer.Stop())
}

func TestRealAfterFunc(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	Real().AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("real timer never fired")
	}
}
