package movable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdleTimer_FiresOnce(t *testing.T) {
	var fired int
	tm := NewIdleTimer(2500*time.Millisecond, 500*time.Millisecond, func() { fired++ })

	tm.Start(t0)
	assert.True(t, tm.Armed())
	assert.False(t, tm.Poll(t0.Add(2499*time.Millisecond)))
	assert.True(t, tm.Poll(t0.Add(2500*time.Millisecond)))
	assert.False(t, tm.Poll(t0.Add(time.Hour)))
	assert.Equal(t, 1, fired)
	assert.False(t, tm.Armed())
}

func TestIdleTimer_Cancel(t *testing.T) {
	var fired int
	tm := NewIdleTimer(time.Second, 0, func() { fired++ })

	tm.Start(t0)
	tm.Cancel()
	assert.False(t, tm.Poll(t0.Add(time.Hour)))
	assert.Equal(t, 0, fired)
	assert.True(t, tm.Deadline().IsZero())
}

func TestIdleTimer_RestartIsNotAdditive(t *testing.T) {
	var fired int
	tm := NewIdleTimer(time.Second, 0, func() { fired++ })

	tm.Start(t0)
	tm.Start(t0.Add(800 * time.Millisecond))
	assert.Equal(t, t0.Add(1800*time.Millisecond), tm.Deadline())

	assert.False(t, tm.Poll(t0.Add(time.Second)))
	assert.True(t, tm.Poll(t0.Add(1800*time.Millisecond)))
	assert.Equal(t, 1, fired)
}

func TestIdleTimer_Ticks(t *testing.T) {
	var remaining []time.Duration
	tm := NewIdleTimer(2500*time.Millisecond, 500*time.Millisecond, nil)
	tm.OnTick = func(d time.Duration) { remaining = append(remaining, d) }

	tm.Start(t0)
	assert.Equal(t, t0.Add(500*time.Millisecond), tm.Deadline())

	tm.Poll(t0.Add(1200 * time.Millisecond))
	assert.Equal(t, []time.Duration{2000 * time.Millisecond, 1500 * time.Millisecond}, remaining)
	assert.Equal(t, t0.Add(1500*time.Millisecond), tm.Deadline())

	assert.True(t, tm.Poll(t0.Add(3*time.Second)))
	assert.Equal(t, []time.Duration{
		2000 * time.Millisecond,
		1500 * time.Millisecond,
		1000 * time.Millisecond,
		500 * time.Millisecond,
	}, remaining)
}

func TestIdleTimer_IntervalClearedAfterStart(t *testing.T) {
	var ticks, fired int
	tm := NewIdleTimer(2500*time.Millisecond, 500*time.Millisecond, func() { fired++ })
	tm.OnTick = func(time.Duration) { ticks++ }

	tm.Start(t0)
	tm.Interval = 0
	assert.Equal(t, t0.Add(2500*time.Millisecond), tm.Deadline())
	assert.False(t, tm.Poll(t0.Add(time.Second)))
	assert.True(t, tm.Poll(t0.Add(2500*time.Millisecond)))
	assert.Equal(t, 0, ticks)
	assert.Equal(t, 1, fired)
}
