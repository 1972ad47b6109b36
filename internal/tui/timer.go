package tui

import "time"

// Timer expires a fixed duration after Start. A new timer starts expired.
type Timer struct {
	Duration time.Duration

	now     func() time.Time
	started time.Time
	running bool
}

func NewTimer(d time.Duration, now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{Duration: d, now: now}
}

func (t *Timer) Start() {
	t.started = t.now()
	t.running = true
}

func (t *Timer) Expire() { t.running = false }

func (t *Timer) Expired() bool {
	return !t.running || t.now().Sub(t.started) > t.Duration
}

// Started returns the last start instant; it tags tick messages so a stale
// tick from an earlier start is ignored.
func (t *Timer) Started() time.Time { return t.started }
