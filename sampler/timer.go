package sampler

import "time"

const DefaultInterval = 5 * time.Millisecond

// Timer fires once the accumulated time reaches its interval. Surplus time is
// dropped on fire, so a timer fires at most once per Tick.
type Timer struct {
	Interval time.Duration
	Elapsed  time.Duration
}

func NewTimer(interval time.Duration) Timer {
	return Timer{Interval: interval}
}

func (t *Timer) Tick(dt time.Duration) bool {
	t.Elapsed += dt
	if t.Elapsed < t.Interval {
		return false
	}
	t.Elapsed = 0
	return true
}

func (t *Timer) Reset() {
	t.Elapsed = 0
}
