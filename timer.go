package movable

import "time"

// IdleTimer is a single-shot countdown driven by the caller's clock.
// Start arms it, Cancel disarms it and Poll fires it once the delay elapsed.
// Starting an armed timer restarts the delay from zero.
type IdleTimer struct {
	Delay    time.Duration
	Interval time.Duration

	// OnTick is called once per elapsed Interval while the timer runs,
	// with the time left until it fires. It may be nil.
	OnTick func(remaining time.Duration)
	// OnFinish is called when the timer fires.
	OnFinish func()

	armed    bool
	deadline time.Time
	nextTick time.Time
}

// NewIdleTimer returns a disarmed timer.
func NewIdleTimer(delay, interval time.Duration, onFinish func()) *IdleTimer {
	return &IdleTimer{
		Delay:    delay,
		Interval: interval,
		OnFinish: onFinish,
	}
}

// Start (re)arms the timer to fire Delay after now.
func (t *IdleTimer) Start(now time.Time) {
	t.armed = true
	t.deadline = now.Add(t.Delay)
	t.nextTick = time.Time{}
	if t.Interval > 0 {
		t.nextTick = now.Add(t.Interval)
	}
}

// Cancel disarms the timer. A cancelled timer never fires.
func (t *IdleTimer) Cancel() {
	t.armed = false
}

// Armed reports whether the timer is waiting to fire.
func (t *IdleTimer) Armed() bool {
	return t.armed
}

// Deadline returns the next instant Poll has work to do at.
// The zero time is returned for a disarmed timer.
func (t *IdleTimer) Deadline() time.Time {
	if !t.armed {
		return time.Time{}
	}
	if t.OnTick != nil && t.Interval > 0 && !t.nextTick.IsZero() && t.nextTick.Before(t.deadline) {
		return t.nextTick
	}
	return t.deadline
}

// Poll delivers the ticks due at now and fires the timer if its delay
// has elapsed. It reports whether the timer fired.
func (t *IdleTimer) Poll(now time.Time) bool {
	if !t.armed {
		return false
	}
	if t.Interval <= 0 {
		// The interval was cleared after Start.
		t.nextTick = time.Time{}
	}
	if !t.nextTick.IsZero() {
		for t.nextTick.Before(t.deadline) && !now.Before(t.nextTick) {
			if t.OnTick != nil {
				t.OnTick(t.deadline.Sub(t.nextTick))
			}
			t.nextTick = t.nextTick.Add(t.Interval)
		}
	}
	if now.Before(t.deadline) {
		return false
	}
	t.armed = false
	if t.OnFinish != nil {
		t.OnFinish()
	}
	return true
}
