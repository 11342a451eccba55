package core

import (
	"sort"
	"time"
)

// Timer is a fire-once callback scheduled on a Scheduler.
type Timer struct {
	due       time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel stops the timer from firing. It reports whether the timer was still
// pending. Cancelling a nil, fired or already cancelled timer is a no-op.
func (t *Timer) Cancel() bool {
	if t == nil || t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the timer has neither fired nor been cancelled.
func (t *Timer) Pending() bool {
	return t != nil && !t.fired && !t.cancelled
}

// Scheduler holds one-shot callbacks keyed by simulation time.
// It is not safe for concurrent use; hosts fire it from their frame loop.
type Scheduler struct {
	timers []*Timer
	seq    uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules fn to run once the clock reaches due.
func (s *Scheduler) At(due time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{due: due, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Fire runs every pending timer due at or before now, in due order.
// Timers scheduled by a callback run on a later call. Returns the number of
// callbacks run.
func (s *Scheduler) Fire(now time.Duration) int {
	var due, keep []*Timer
	for _, t := range s.timers {
		switch {
		case t.cancelled:
		case t.due <= now:
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	s.timers = keep

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	n := 0
	for _, t := range due {
		// An earlier callback may have cancelled this one.
		if t.cancelled {
			continue
		}
		t.fired = true
		t.fn()
		n++
	}
	return n
}

// CancelAll cancels every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.Cancel()
	}
	s.timers = nil
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}
