// Package session owns the single running game of one player.
// Starting a game discards the previous one, so a stale game can never
// touch shared state through a late timer callback.
package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/registry"
)

// Result is the outcome of one finished run.
type Result struct {
	SessionID string
	GameID    string
	Score     int
	Duration  time.Duration

	// Stage is how far the run got ("Generation" 12, "Level" 3), read from
	// the final HUD. Both are zero when the game reports no stage.
	StageLabel string
	Stage      int
}

// stageLabels are the HUD readouts that measure a run's progress, in order
// of preference.
var stageLabels = []string{"Level", "Generation"}

// stageOf returns the first numeric stage readout in st.
func stageOf(st core.GameState) (string, int) {
	for _, label := range stageLabels {
		v, ok := st.Readout(label)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil {
			return label, n
		}
	}
	return "", 0
}

// ResultSaver persists finished runs.
type ResultSaver interface {
	SaveResult(r Result) error
}

// Session is one running game instance.
type Session struct {
	ID      string
	Game    registry.Game
	Loop    *core.Loop
	Started time.Duration // host clock at the start of the current run

	live     bool
	recorded bool
}

// Live reports whether the session is still the current one.
func (s *Session) Live() bool {
	return s.live
}

// Manager creates and tears down sessions for one host.
// It is driven from a single goroutine (the host loop).
type Manager struct {
	host    core.Host
	runtime core.RuntimeConfig
	saver   ResultSaver
	logger  *log.Logger
	current *Session
}

// NewManager creates a manager. saver and logger may be nil.
func NewManager(host core.Host, runtime core.RuntimeConfig, saver ResultSaver, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		host:    host,
		runtime: runtime,
		saver:   saver,
		logger:  logger,
	}
}

// Current returns the running session, or nil.
func (m *Manager) Current() *Session {
	return m.current
}

// SetScreen updates the screen size used for the next session.
func (m *Manager) SetScreen(w, h int) {
	m.runtime.ScreenW = w
	m.runtime.ScreenH = h
}

// Start ends the current session and launches a fresh instance of gameID.
func (m *Manager) Start(gameID string) (*Session, error) {
	m.End()

	g, err := registry.Create(gameID)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	rc := m.runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.Reset(rc, m.host)

	s := &Session{
		ID:      uuid.NewString(),
		Game:    g,
		Loop:    core.NewLoop(g, m.host),
		Started: m.host.Now(),
		live:    true,
	}
	m.current = s
	m.logger.Info("session started", "game", gameID, "session", s.ID, "seed", rc.Seed)
	return s, nil
}

// End exits the current game and forgets it. Pending host timers owned by
// the game are cancelled by its Exit.
func (m *Manager) End() {
	s := m.current
	if s == nil {
		return
	}
	m.current = nil
	s.live = false
	s.Game.Exit()
	m.logger.Debug("session ended", "game", s.Game.ID(), "session", s.ID, "frames", s.Loop.Frames())
}

// Tick runs one frame of the current session and renders into dst.
// A finished run is recorded once; a run restarted from the results screen
// is recorded again when it ends. The session ends when the player exits.
// ok is false when no session is running.
func (m *Manager) Tick(dst *core.Screen) (res core.StepResult, ok bool) {
	s := m.current
	if s == nil {
		return core.StepResult{}, false
	}

	res = s.Loop.Tick(dst)
	st := res.State
	switch {
	case st.GameOver && !s.recorded:
		s.recorded = true
		m.record(s, st)
	case !st.GameOver && s.recorded:
		s.recorded = false
		s.Started = m.host.Now()
	}

	if st.Exited {
		m.End()
	}
	return res, true
}

func (m *Manager) record(s *Session, st core.GameState) {
	r := Result{
		SessionID: s.ID,
		GameID:    s.Game.ID(),
		Score:     st.Score,
		Duration:  m.host.Now() - s.Started,
	}
	r.StageLabel, r.Stage = stageOf(st)
	m.logger.Info("game over", "game", r.GameID, "session", r.SessionID, "score", r.Score,
		"duration", r.Duration, "stage", r.Stage)
	if m.saver == nil {
		return
	}
	if err := m.saver.SaveResult(r); err != nil {
		m.logger.Error("cannot save result", "game", r.GameID, "err", err)
	}
}
