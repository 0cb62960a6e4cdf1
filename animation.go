package movable

import "time"

// Animation linearly interpolates an integer property over a fixed duration.
type Animation struct {
	from, to int
	start    time.Time
	duration time.Duration
	running  bool
}

// Start begins animating from one value to another at now.
func (a *Animation) Start(from, to int, now time.Time, d time.Duration) {
	a.from, a.to = from, to
	a.start = now
	a.duration = d
	a.running = true
}

// Stop aborts the animation, leaving the property where it is.
func (a *Animation) Stop() {
	a.running = false
}

// Running reports whether the animation has been started and not yet
// stopped or finished.
func (a *Animation) Running() bool {
	return a.running
}

// Target returns the final value of the animation.
func (a *Animation) Target() int {
	return a.to
}

// Value returns the interpolated value at now.
// The result is truncated toward zero like an integer property animator.
func (a *Animation) Value(now time.Time) int {
	elapsed := now.Sub(a.start)
	if a.duration <= 0 || elapsed >= a.duration {
		return a.to
	}
	if elapsed <= 0 {
		return a.from
	}
	frac := float64(elapsed) / float64(a.duration)
	return a.from + int(float64(a.to-a.from)*frac)
}

// Done reports whether the animation reached its target at now.
func (a *Animation) Done(now time.Time) bool {
	return now.Sub(a.start) >= a.duration
}
