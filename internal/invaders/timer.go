package invaders

import "time"

// Timer is a repeating interval timer driven by elapsed game time.
type Timer struct {
	Interval time.Duration
	elapsed  time.Duration
}

// NewTimer creates a repeating timer with the given interval.
func NewTimer(interval time.Duration) Timer {
	return Timer{Interval: interval}
}

// Tick advances the timer by dt and returns how many intervals completed.
// The remainder carries over to the next call.
func (t *Timer) Tick(dt time.Duration) int {
	if t.Interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.Interval)
	t.elapsed %= t.Interval
	return n
}

// Elapsed returns the time accumulated toward the next interval.
func (t Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Reset clears accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
}
