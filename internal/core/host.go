package core

import "time"

// Host is everything the simulation needs from its environment.
// Terminal, SSH and headless front ends each provide one.
type Host interface {
	// Now returns the elapsed time on the host clock.
	Now() time.Duration

	// Intent returns the input gathered since the previous call.
	// Requested actions are consumed; held actions stay set while held.
	Intent() InputFrame

	// After schedules fn to run once, d after Now. The returned timer can
	// be cancelled; callbacks must still check that their session is live.
	After(d time.Duration, fn func()) *Timer

	// BestScore returns the persisted best score stored under key.
	BestScore(key string) int

	// SaveBestScore stores score under key when it beats the stored value.
	// Reports whether a new best was written.
	SaveBestScore(key string, score int) bool
}

// HeadlessHost is an in-memory Host driven by a manual clock.
// Tests and the simulate command use it to run games without a terminal.
type HeadlessHost struct {
	clock  time.Duration
	sched  *Scheduler
	held   map[Action]bool
	queued InputFrame
	best   map[string]int
}

// NewHeadlessHost creates a host with its clock at zero.
func NewHeadlessHost() *HeadlessHost {
	return &HeadlessHost{
		sched:  NewScheduler(),
		held:   make(map[Action]bool),
		queued: NewInputFrame(),
		best:   make(map[string]int),
	}
}

// Now returns the manual clock.
func (h *HeadlessHost) Now() time.Duration {
	return h.clock
}

// Advance moves the clock forward and fires due timers.
func (h *HeadlessHost) Advance(d time.Duration) {
	h.clock += d
	h.sched.Fire(h.clock)
}

// Press queues a one-shot action for the next Intent call.
func (h *HeadlessHost) Press(a Action) {
	h.queued.Set(a)
}

// Hold keeps an action set until Release.
func (h *HeadlessHost) Hold(a Action) {
	h.held[a] = true
}

// Release stops holding an action.
func (h *HeadlessHost) Release(a Action) {
	delete(h.held, a)
}

// Intent returns queued and held actions and clears the queue.
func (h *HeadlessHost) Intent() InputFrame {
	in := h.queued.Clone()
	for a := range h.held {
		in.Set(a)
	}
	h.queued.Clear()
	return in
}

// After schedules fn on the manual clock.
func (h *HeadlessHost) After(d time.Duration, fn func()) *Timer {
	return h.sched.At(h.clock+d, fn)
}

// PendingTimers returns the number of timers not yet fired or cancelled.
func (h *HeadlessHost) PendingTimers() int {
	return h.sched.Len()
}

// BestScore returns the in-memory best score.
func (h *HeadlessHost) BestScore(key string) int {
	return h.best[key]
}

// SaveBestScore records a new best in memory.
func (h *HeadlessHost) SaveBestScore(key string, score int) bool {
	if score <= h.best[key] {
		return false
	}
	h.best[key] = score
	return true
}
