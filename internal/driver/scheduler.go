package driver

import (
	"slices"
	"time"
)

// Scheduler runs fn once after delay. The returned cancel func prevents a
// pending fn from running; calling it after fn ran is harmless.
//
// Implementations must call fn on the goroutine that owns the Driver.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// ManualScheduler is a virtual-clock Scheduler. Nothing fires until Advance
// or RunNext is called, which makes playback deterministic in tests and lets
// headless callers run a sort as fast as the machine can step.
//
// ManualScheduler is not safe for concurrent use.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*timer
}

type timer struct {
	at        time.Duration
	seq       int
	fn        func()
	cancelled bool
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) func() {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &timer{at: s.now + delay, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return func() { t.cancelled = true }
}

// Now returns the virtual time elapsed since construction.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers that have not fired or been
// cancelled.
func (s *ManualScheduler) Pending() int {
	s.compact()
	return len(s.pending)
}

// Advance moves the clock forward by d, firing every timer that falls due
// in order. Timers scheduled by a firing fn also fire if they fall inside
// the window. It returns the number of fns run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0
	for {
		t := s.next()
		if t == nil || t.at > target {
			break
		}
		s.fire(t)
		fired++
	}
	s.now = target
	return fired
}

// RunNext jumps the clock to the earliest pending timer and fires it. It
// reports false when nothing is pending.
func (s *ManualScheduler) RunNext() bool {
	t := s.next()
	if t == nil {
		return false
	}
	s.fire(t)
	return true
}

// RunUntilIdle fires timers until none remain or limit fns have run. It
// returns the number fired.
func (s *ManualScheduler) RunUntilIdle(limit int) int {
	fired := 0
	for fired < limit && s.RunNext() {
		fired++
	}
	return fired
}

func (s *ManualScheduler) next() *timer {
	s.compact()
	if len(s.pending) == 0 {
		return nil
	}
	return slices.MinFunc(s.pending, func(a, b *timer) int {
		if a.at != b.at {
			if a.at < b.at {
				return -1
			}
			return 1
		}
		return a.seq - b.seq
	})
}

func (s *ManualScheduler) fire(t *timer) {
	s.pending = slices.DeleteFunc(s.pending, func(p *timer) bool { return p == t })
	if t.at > s.now {
		s.now = t.at
	}
	t.fn()
}

func (s *ManualScheduler) compact() {
	s.pending = slices.DeleteFunc(s.pending, func(t *timer) bool { return t.cancelled })
}
