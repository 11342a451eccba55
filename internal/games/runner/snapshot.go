package runner

import "math"

// Snapshot is the observable game state used for determinism checks and the
// simulate command. Positions are rounded to hundredths so tiny float drift
// in unrelated code paths does not hide real divergence.
type Snapshot struct {
	Tick         int     `yaml:"tick"`
	State        string  `yaml:"state"`
	Generation   int     `yaml:"generation"`
	Fitness      float64 `yaml:"fitness"`
	Scroll       float64 `yaml:"scroll"`
	Speed        float64 `yaml:"speed"`
	PlayerY      float64 `yaml:"player_y"`
	PlayerVY     float64 `yaml:"player_vy"`
	Jumps        int     `yaml:"jumps"`
	Obstacles    []int   `yaml:"obstacles"` // kind, x, y per obstacle
	Collectibles int     `yaml:"collectibles"`
	Particles    int     `yaml:"particles"`
	Message      string  `yaml:"message,omitempty"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obs := make([]int, 0, len(g.obstacles)*3)
	for _, o := range g.obstacles {
		obs = append(obs, int(o.Kind), int(o.Pos.X), int(o.Pos.Y))
	}
	return Snapshot{
		Tick:         g.tickCount,
		State:        g.state.String(),
		Generation:   g.generation,
		Fitness:      round2(g.fitness),
		Scroll:       round2(g.scroll),
		Speed:        round2(g.speed),
		PlayerY:      round2(g.player.Pos.Y),
		PlayerVY:     round2(g.player.VY),
		Jumps:        g.player.Jumps,
		Obstacles:    obs,
		Collectibles: len(g.collectibles),
		Particles:    len(g.effects.Particles),
		Message:      g.message,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick)
	h = h*31 + uint64(s.Generation)
	h = h*31 + math.Float64bits(s.Fitness)
	h = h*31 + math.Float64bits(s.Scroll)
	h = h*31 + math.Float64bits(s.PlayerY)
	h = h*31 + uint64(s.Jumps)
	for _, v := range s.Obstacles {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(s.Collectibles)
	h = h*31 + uint64(s.Particles)
	return h
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
