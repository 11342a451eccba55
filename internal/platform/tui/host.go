package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

// DefaultHoldWindow is how long a held action stays set after its last key
// event. Terminals report key repeats but never key releases.
const DefaultHoldWindow = 200 * time.Millisecond

// swipeThreshold is the drag distance, in cells, that counts as a swipe.
// Rows are roughly twice as tall as columns, so vertical travel is doubled.
const swipeThreshold = 4.0

// BestStore persists best scores. *storage.Store implements it.
type BestStore interface {
	BestScore(key string) (int, error)
	SaveBestScore(key string, score int) (bool, error)
}

// TermHost is the core.Host of an interactive terminal session.
// It is owned by one Bubble Tea program and used from its Update goroutine.
type TermHost struct {
	start  time.Time
	now    func() time.Time
	sched  *core.Scheduler
	queued core.InputFrame
	held   map[core.Action]time.Duration // action -> expiry on the host clock
	window time.Duration
	swipe  *core.SwipeTracker

	store  BestStore
	mem    map[string]int
	logger *log.Logger
}

// NewTermHost creates a host on the wall clock. store may be nil, in which
// case best scores only live for the program's lifetime.
func NewTermHost(store BestStore, logger *log.Logger) *TermHost {
	return newTermHost(store, logger, time.Now)
}

func newTermHost(store BestStore, logger *log.Logger, now func() time.Time) *TermHost {
	if logger == nil {
		logger = log.Default()
	}
	return &TermHost{
		start:  now(),
		now:    now,
		sched:  core.NewScheduler(),
		queued: core.NewInputFrame(),
		held:   make(map[core.Action]time.Duration),
		window: DefaultHoldWindow,
		swipe:  core.NewSwipeTracker(swipeThreshold),
		store:  store,
		mem:    make(map[string]int),
		logger: logger,
	}
}

// Now returns the time since the host was created.
func (h *TermHost) Now() time.Duration {
	return h.now().Sub(h.start)
}

// Fire runs due timers. The game model calls it once per tick.
func (h *TermHost) Fire() {
	h.sched.Fire(h.Now())
}

// After schedules fn on the host clock.
func (h *TermHost) After(d time.Duration, fn func()) *core.Timer {
	return h.sched.At(h.Now()+d, fn)
}

// Press queues a one-shot action for the next Intent call.
func (h *TermHost) Press(a core.Action) {
	h.queued.Set(a)
}

// Hold sets an action until the hold window passes without another key
// event for it. Holding one horizontal direction releases the other.
func (h *TermHost) Hold(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.held, core.ActionRight)
	case core.ActionRight:
		delete(h.held, core.ActionLeft)
	}
	h.held[a] = h.Now() + h.window
}

// ReleaseAll drops every held action.
func (h *TermHost) ReleaseAll() {
	clear(h.held)
}

// Intent returns queued and still-held actions and clears the queue.
func (h *TermHost) Intent() core.InputFrame {
	now := h.Now()
	in := h.queued.Clone()
	for a, until := range h.held {
		if now > until {
			delete(h.held, a)
			continue
		}
		in.Set(a)
	}
	h.queued.Clear()
	return in
}

// Pointer feeds a mouse event in cell coordinates. Drags become direction
// presses, a short click becomes a jump.
func (h *TermHost) Pointer(kind PointerKind, x, y int) {
	fx, fy := float64(x), float64(y)*2
	switch kind {
	case PointerDown:
		h.swipe.Start(fx, fy)
	case PointerMove:
		if a, ok := h.swipe.Move(fx, fy); ok {
			h.Press(a)
		}
	case PointerUp:
		if h.swipe.End(fx, fy) {
			h.Press(core.ActionJump)
		}
	}
}

// BestScore reads the stored best, falling back to memory when storage fails.
func (h *TermHost) BestScore(key string) int {
	if h.store == nil {
		return h.mem[key]
	}
	best, err := h.store.BestScore(key)
	if err != nil {
		h.logger.Warn("cannot read best score", "key", key, "err", err)
		return h.mem[key]
	}
	h.mem[key] = max(h.mem[key], best)
	return h.mem[key]
}

// SaveBestScore writes score when it beats the best. When storage fails the
// error is logged and the best is kept in memory only.
func (h *TermHost) SaveBestScore(key string, score int) bool {
	if h.store != nil {
		written, err := h.store.SaveBestScore(key, score)
		if err == nil {
			if written {
				h.mem[key] = score
			}
			return written
		}
		h.logger.Warn("cannot save best score", "key", key, "score", score, "err", err)
	}
	if score <= h.mem[key] {
		return false
	}
	h.mem[key] = score
	return true
}

// PointerKind is the phase of a mouse gesture.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)
