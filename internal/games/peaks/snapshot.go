package peaks

import "math"

// Snapshot is the observable game state used for determinism checks and the
// simulate command.
type Snapshot struct {
	Tick       int     `yaml:"tick"`
	State      string  `yaml:"state"`
	Round      int     `yaml:"round"`
	Phase      string  `yaml:"phase"`
	PhaseTimer float64 `yaml:"phase_timer"`
	Score      int     `yaml:"score"`
	WalkerX    float64 `yaml:"walker_x"`
	WalkerY    float64 `yaml:"walker_y"`
	Water      float64 `yaml:"water"`
	Target     float64 `yaml:"target"`
	Peaks      int     `yaml:"peaks"`
	Pickups    int     `yaml:"pickups"`
	Particles  int     `yaml:"particles"`
	Message    string  `yaml:"message,omitempty"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		State:      g.state.String(),
		Round:      g.round,
		Phase:      g.phase.String(),
		PhaseTimer: round2(g.phaseTimer),
		Score:      g.Score(),
		WalkerX:    round2(g.walker.Pos.X),
		WalkerY:    round2(g.walker.Pos.Y),
		Water:      round2(g.water),
		Target:     round2(g.target),
		Peaks:      len(g.peaks),
		Pickups:    len(g.pickups),
		Particles:  len(g.effects.Particles),
		Message:    g.message,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick)
	h = h*31 + uint64(s.Round)
	h = h*31 + math.Float64bits(s.PhaseTimer)
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.WalkerX)
	h = h*31 + math.Float64bits(s.WalkerY)
	h = h*31 + math.Float64bits(s.Water)
	h = h*31 + uint64(s.Pickups)
	h = h*31 + uint64(s.Particles)
	return h
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
