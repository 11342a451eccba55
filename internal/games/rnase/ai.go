package rnase

import (
	"math"

	"github.com/vovakirdan/lab-arcade/internal/config"
	"github.com/vovakirdan/lab-arcade/internal/field"
)

// Mode is the global ghost behaviour.
type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
)

func (m Mode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "scatter"
}

// resetModes restarts the scatter/chase schedule.
func (g *Game) resetModes() {
	g.mode = ModeScatter
	g.modeCycle = 0
	g.modeTimer = g.scheduleAt(0)
	g.frightTimer = 0
}

// scheduleAt returns the duration of a schedule entry. A negative entry
// lasts forever.
func (g *Game) scheduleAt(i int) float64 {
	s := g.cfg.Ghosts.Schedule
	if i >= len(s) || s[i] < 0 {
		return math.Inf(1)
	}
	return s[i]
}

// frighten starts frightened mode: the combo resets and every ghost that is
// not already eaten turns around.
func (g *Game) frighten() {
	g.frightTimer = g.cfg.Scoring.FrightFrames(g.level)
	g.combo = 0
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if !gh.Eaten {
			gh.Frightened = true
			gh.turnAround()
		}
	}
}

// updateModes counts down frightened mode, and otherwise the schedule.
// The schedule is frozen while ghosts are frightened. Each timed transition
// reverses roaming ghosts; the final open-ended chase does not.
func (g *Game) updateModes(dt float64) {
	if g.frightTimer > 0 {
		g.frightTimer -= dt
		if g.frightTimer <= 0 {
			g.frightTimer = 0
			for i := range g.ghosts {
				g.ghosts[i].Frightened = false
			}
		}
		return
	}

	g.modeTimer -= dt
	if g.modeTimer > 0 {
		return
	}
	g.modeCycle++
	s := g.cfg.Ghosts.Schedule
	if g.modeCycle >= len(s) {
		g.modeTimer = math.Inf(1)
		return
	}
	if s[g.modeCycle] < 0 {
		g.mode = ModeChase
		g.modeTimer = math.Inf(1)
		return
	}

	g.mode = ModeScatter
	if g.modeCycle%2 == 1 {
		g.mode = ModeChase
	}
	g.modeTimer = s[g.modeCycle]
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if !gh.Frightened && !gh.InHouse {
			gh.turnAround()
		}
	}
}

// scatterCorner returns the home corner of ghost id.
func (g *Game) scatterCorner(id int) config.TilePos {
	cols, rows := g.maze.Cols(), g.maze.Rows()
	switch id % 4 {
	case 0:
		return config.TilePos{Col: cols - 2, Row: 1}
	case 1:
		return config.TilePos{Col: 1, Row: 1}
	case 2:
		return config.TilePos{Col: cols - 2, Row: rows - 2}
	default:
		return config.TilePos{Col: 1, Row: rows - 2}
	}
}

// target returns the tile a ghost steers toward.
//
//   - RI chases the player's tile.
//   - SUPERase ambushes a few tiles ahead of the player.
//   - RNasin doubles the vector from RI to a point just ahead of the player.
//   - DEPC chases from afar and retreats to its corner when close.
func (g *Game) target(gh *Ghost) config.TilePos {
	if g.mode == ModeScatter && g.frightTimer <= 0 {
		return g.scatterCorner(gh.ID)
	}

	gc := &g.cfg.Ghosts
	p := &g.player
	switch gh.ID {
	case 1:
		c, r := p.Dir.Step(p.Col, p.Row, gc.AmbushTiles)
		return config.TilePos{Col: c, Row: r}
	case 2:
		c, r := p.Dir.Step(p.Col, p.Row, gc.FlankTiles)
		lead := &g.ghosts[0]
		return config.TilePos{Col: c + (c - lead.Col), Row: r + (r - lead.Row)}
	case 3:
		dc, dr := p.Col-gh.Col, p.Row-gh.Row
		if dc*dc+dr*dr > gc.ShyRadius*gc.ShyRadius {
			return config.TilePos{Col: p.Col, Row: p.Row}
		}
		return g.scatterCorner(3)
	default:
		return config.TilePos{Col: p.Col, Row: p.Row}
	}
}

// chooseDir picks the heading at a tile center. Ghosts never turn back while
// another way is open; they never re-enter the house from outside. A chasing
// ghost takes the neighbour closest to its target, a frightened one picks at
// random.
func (g *Game) chooseDir(gh *Ghost) Dir {
	reverse := gh.Dir.Reverse()
	tgt := g.target(gh)

	best := Dir(-1)
	bestScore := math.Inf(1)
	for d := DirRight; d <= DirUp; d++ {
		if d == reverse {
			continue
		}
		c, r := d.Step(gh.Col, gh.Row, 1)
		if !g.openForGhost(c, r) {
			continue
		}

		var score float64
		if gh.Frightened {
			score = g.rng.Float64()
		} else {
			c = g.maze.WrapCol(c)
			dc, dr := c-tgt.Col, r-tgt.Row
			score = float64(dc*dc + dr*dr)
		}
		if score < bestScore {
			bestScore, best = score, d
		}
	}

	switch {
	case best >= 0:
		return best
	case g.openForGhost(reverse.Step(gh.Col, gh.Row, 1)):
		return reverse
	default:
		return gh.Dir
	}
}

// openForGhost reports whether a roaming ghost may enter a tile.
func (g *Game) openForGhost(c, r int) bool {
	switch g.maze.At(c, r) {
	case field.TileWall, field.TileHouse, field.TileDoor:
		return false
	}
	return true
}
