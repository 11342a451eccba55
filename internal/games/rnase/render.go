package rnase

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/field"
)

// Visual characters for rendering
const (
	WallChar    = '█'
	DoorChar    = '━'
	HairpinChar = '⌘'
	GhostChar   = 'Ω'
	EyesChar    = '◦'
	PlayerChar  = '●'
	DyingChar   = '✶'
)

var (
	rnaBases    = []rune{'A', 'U', 'G', 'C'}
	baseColors  = []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen, core.ColorOrange}
	ghostColors = []core.Color{core.ColorBrightRed, core.ColorPink, core.ColorBrightCyan, core.ColorOrange}

	// mouthChars open toward the heading.
	mouthChars = [4]rune{'<', '^', '>', 'v'}
)

const (
	hudRows      = 1
	cellsPerTile = 2
	flashWindow  = 120.0
	flashPeriod  = 15
)

// layout maps maze tiles onto the screen, two columns per tile.
type layout struct {
	ox, oy int
	ts     float64
}

func (g *Game) layout(dst *core.Screen) layout {
	w := g.maze.Cols() * cellsPerTile
	return layout{
		ox: max((dst.Width()-w)/2, 0),
		oy: hudRows + max((dst.Height()-hudRows-g.maze.Rows())/2, 0),
		ts: g.cfg.Maze.TileSize,
	}
}

func (l layout) tile(c, r int) (int, int) {
	return l.ox + c*cellsPerTile, l.oy + r
}

// pixel maps a pixel position to its screen cell.
func (l layout) pixel(p core.Vec2) (int, int) {
	c := int(math.Floor(p.X / l.ts * cellsPerTile))
	r := int(math.Floor(p.Y / l.ts))
	return l.ox + c, l.oy + r
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.maze == nil {
		return
	}
	l := g.layout(dst)
	g.drawMaze(dst, l)

	for i := range g.ghosts {
		g.drawGhost(dst, l, &g.ghosts[i])
	}
	g.drawPlayer(dst, l)

	for _, p := range g.effects.Particles {
		x, y := l.pixel(p.Pos)
		dst.SetColored(x, y, core.ParticleGlyph(p.Alpha()), core.Fade(p.Color, p.Alpha()))
	}
	for _, t := range g.effects.Texts {
		x, y := l.pixel(t.Pos)
		dst.DrawTextColored(x, y, t.Text, core.Fade(t.Color, t.Alpha()))
	}

	g.drawHUD(dst)

	_, banner := l.tile(0, g.cfg.Player.Start.Row-4)
	switch {
	case g.exited:
	case g.play == playOver:
		best := fmt.Sprintf("BEST: %d", g.best)
		if g.newBest {
			best = "★ NEW HIGH SCORE!"
		}
		dst.DrawPanel([]string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d   Level: %d   RNA eaten: %d", g.score, g.level, g.rnaEaten),
			best,
			"",
			"R restart  Esc menu",
		}, core.ColorRed, core.ColorWhite)
	case g.paused:
		dst.DrawPanel([]string{"PAUSED", "Press P to resume"}, core.ColorYellow, core.ColorWhite)
	case g.play == playReady:
		dst.DrawTextCentered(banner, "READY!", core.ColorBrightYellow)
	case g.play == playLevelDone:
		dst.DrawTextCentered(banner, "RNA DEGRADED!", core.ColorBrightGreen)
	}
}

func (g *Game) drawMaze(dst *core.Screen, l layout) {
	pulse := math.Sin(float64(g.tickCount)*0.08)*0.3 + 0.7
	wall := core.ColorBlue
	if g.play == playLevelDone && (g.tickCount/flashPeriod)%2 == 0 {
		wall = core.ColorBrightWhite
	}

	for r := 0; r < g.maze.Rows(); r++ {
		for c := 0; c < g.maze.Cols(); c++ {
			x, y := l.tile(c, r)
			switch g.maze.At(c, r) {
			case field.TileWall:
				dst.SetColored(x, y, WallChar, wall)
				dst.SetColored(x+1, y, WallChar, wall)
			case field.TileDoor:
				dst.SetColored(x, y, DoorChar, core.ColorPink)
				dst.SetColored(x+1, y, DoorChar, core.ColorPink)
			case field.TileDot:
				b := g.bases[r*g.maze.Cols()+c]
				dst.SetColored(x, y, rnaBases[b], baseColors[b])
			case field.TilePower:
				dst.SetColored(x, y, HairpinChar, core.Fade(core.ColorPink, pulse))
			}
		}
	}
}

func (g *Game) drawGhost(dst *core.Screen, l layout, gh *Ghost) {
	x, y := l.pixel(gh.Pos)
	switch {
	case gh.Eaten:
		dst.SetColored(x, y, EyesChar, core.ColorWhite)
		dst.SetColored(x+1, y, EyesChar, core.ColorWhite)
	case gh.Frightened:
		c := core.ColorNavy
		if g.frightTimer < flashWindow && int(g.frightTimer/flashPeriod)%2 == 0 {
			c = core.ColorBrightWhite
		}
		dst.SetColored(x, y, GhostChar, c)
	default:
		dst.SetColored(x, y, GhostChar, ghostColors[gh.ID%len(ghostColors)])
	}
}

func (g *Game) drawPlayer(dst *core.Screen, l layout) {
	p := &g.player
	x, y := l.pixel(p.Pos)
	switch {
	case p.Alive && p.Moving && (g.tickCount/6)%2 == 0:
		dst.SetColored(x, y, mouthChars[p.Dir], core.ColorGold)
	case p.Alive:
		dst.SetColored(x, y, PlayerChar, core.ColorGold)
	case g.play == playDying:
		alpha := 1 - g.deathAnim/g.cfg.Timing.Death
		dst.SetColored(x, y, DyingChar, core.Fade(core.ColorGold, alpha))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	lives := ""
	for i := 0; i < g.lives; i++ {
		lives += "◉"
	}
	hud := fmt.Sprintf(" SCORE %d │ LEVEL %d │ LIVES %s │ RNA %d │ BEST %d ",
		g.score, g.level, lives, g.rnaEaten, g.best)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}
