package order

import (
	"sort"
	"sync"
	"time"
)

// Scheduler abstracts deferred one-shot callbacks so stage progression can be
// driven by virtual time in tests instead of real sleeps.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type Timer interface {
	Stop() bool
}

type realScheduler struct{}

// NewScheduler returns a Scheduler backed by time.AfterFunc.
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// ManualScheduler runs callbacks only when Advance moves its virtual clock
// forward. Tests use it to fast-forward stage progression deterministically.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*manualTimer
}

// manualTimer state is guarded by its scheduler's mutex.
type manualTimer struct {
	sched   *ManualScheduler
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{sched: s, at: s.now + d, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves virtual time forward and fires every due callback in
// schedule order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	var rest []*manualTimer
	for _, t := range s.pending {
		if !t.stopped && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		} else if !t.stopped {
			rest = append(rest, t)
		}
	}
	s.pending = rest
	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

// Pending reports how many callbacks are still scheduled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *manualTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
