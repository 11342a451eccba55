package rnase

import "math"

// GhostSnapshot is one ghost in a Snapshot.
type GhostSnapshot struct {
	Name       string  `yaml:"name"`
	Col        int     `yaml:"col"`
	Row        int     `yaml:"row"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Dir        string  `yaml:"dir"`
	Frightened bool    `yaml:"frightened,omitempty"`
	Eaten      bool    `yaml:"eaten,omitempty"`
	InHouse    bool    `yaml:"in_house,omitempty"`
}

// Snapshot is the observable game state used for determinism checks and the
// simulate command.
type Snapshot struct {
	Tick      int             `yaml:"tick"`
	State     string          `yaml:"state"`
	Level     int             `yaml:"level"`
	Score     int             `yaml:"score"`
	Lives     int             `yaml:"lives"`
	RNAEaten  int             `yaml:"rna_eaten"`
	Remaining int             `yaml:"remaining"`
	Mode      string          `yaml:"mode"`
	Fright    float64         `yaml:"fright"`
	PlayerCol int             `yaml:"player_col"`
	PlayerRow int             `yaml:"player_row"`
	PlayerDir string          `yaml:"player_dir"`
	Ghosts    []GhostSnapshot `yaml:"ghosts"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ghosts := make([]GhostSnapshot, 0, len(g.ghosts))
	for _, gh := range g.ghosts {
		ghosts = append(ghosts, GhostSnapshot{
			Name:       gh.Name,
			Col:        gh.Col,
			Row:        gh.Row,
			X:          round2(gh.Pos.X),
			Y:          round2(gh.Pos.Y),
			Dir:        gh.Dir.String(),
			Frightened: gh.Frightened,
			Eaten:      gh.Eaten,
			InHouse:    gh.InHouse,
		})
	}
	return Snapshot{
		Tick:      g.tickCount,
		State:     g.play.String(),
		Level:     g.level,
		Score:     g.score,
		Lives:     g.lives,
		RNAEaten:  g.rnaEaten,
		Remaining: g.maze.Remaining(),
		Mode:      g.mode.String(),
		Fright:    round2(g.frightTimer),
		PlayerCol: g.player.Col,
		PlayerRow: g.player.Row,
		PlayerDir: g.player.Dir.String(),
		Ghosts:    ghosts,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick)
	h = h*31 + uint64(s.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Remaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.PlayerCol) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.PlayerRow) //#nosec G115 -- hash computation
	for _, gh := range s.Ghosts {
		h = h*31 + math.Float64bits(gh.X)
		h = h*31 + math.Float64bits(gh.Y)
	}
	return h
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
