package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '●'
	PlayerGlowChar  = '◉'
	GroundTopChar   = '▀'
	GroundFillChar  = '░'
	MisfoldedChar   = '✱'
	StopCodonChar   = '■'
	DegradationChar = '▼'
	GoodChar        = '+'
	GreatChar       = '◆'
)

const hudRows = 1

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.terrain == nil {
		return
	}
	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height(), hudRows)
	ox := g.shakeOffset(vp)

	// Terrain surface and fill
	for col := 0; col < vp.Cols; col++ {
		ground := g.groundAt(vp.ColumnX(col - ox))
		top := max(vp.RowOf(ground), vp.Top)
		dst.SetColored(col, top, GroundTopChar, core.ColorGreen)
		for row := top + 1; row <= vp.Bottom(); row++ {
			dst.SetColored(col, row, GroundFillChar, core.ColorTeal)
		}
	}

	for _, c := range g.collectibles {
		x, y := vp.ToCell(core.Vec2{X: c.Pos.X, Y: c.BobbedY(g.cfg.Collectibles.BobAmp)})
		if c.Great {
			dst.SetColored(x+ox, y, GreatChar, core.ColorGold)
		} else {
			dst.SetColored(x+ox, y, GoodChar, core.ColorBrightGreen)
		}
	}

	for _, o := range g.obstacles {
		x, y := vp.ToCell(o.Pos)
		switch o.Kind {
		case StopCodon:
			dst.SetColored(x+ox, y, StopCodonChar, core.ColorOrange)
		case Degradation:
			dst.SetColored(x+ox, y, DegradationChar, core.ColorMagenta)
		default:
			dst.SetColored(x+ox, y, MisfoldedChar, core.ColorRed)
		}
	}

	if g.player.Alive {
		x, y := vp.ToCell(g.player.Pos)
		if g.player.Glow > 0 {
			dst.SetColored(x+ox, y, PlayerGlowChar, core.ColorBrightCyan)
		} else {
			dst.SetColored(x+ox, y, PlayerChar, core.ColorCyan)
		}
	}

	for _, p := range g.effects.Particles {
		x, y := vp.ToCell(p.Pos)
		dst.SetColored(x+ox, y, core.ParticleGlyph(p.Alpha()), core.Fade(p.Color, p.Alpha()))
	}
	for _, t := range g.effects.Texts {
		x, y := vp.ToCell(t.Pos)
		dst.DrawTextColored(x+ox, y, t.Text, core.Fade(t.Color, t.Alpha()))
	}

	if g.banner != "" {
		dst.DrawTextCentered(vp.Top+vp.Rows/4, g.banner, core.ColorBrightYellow)
	}

	g.drawHUD(dst)

	switch {
	case g.exited:
	case g.state == phaseOver:
		best := fmt.Sprintf("Best: %d", g.best)
		if g.newBest {
			best = "★ NEW BEST!"
		}
		dst.DrawPanel([]string{
			"SELECTED AGAINST",
			g.message,
			"",
			fmt.Sprintf("Generations: %d   Fitness: %d", g.generation, int(g.fitness)),
			best,
			"",
			"R restart  Esc menu",
		}, core.ColorRed, core.ColorWhite)
	case g.paused:
		dst.DrawPanel([]string{"PAUSED", "Press P to resume"}, core.ColorYellow, core.ColorWhite)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" GEN %d │ FITNESS %d │ SPEED %.1f │ BEST %d ",
		g.generation, int(g.fitness), g.speed, g.best)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

// shakeOffset converts the current shake into whole columns. It uses the tick
// count rather than the game RNG so rendering never alters the simulation.
func (g *Game) shakeOffset(vp core.Viewport) int {
	if g.shake <= 0 {
		return 0
	}
	dx := math.Sin(float64(g.tickCount)*1.7) * g.shake
	return int(math.Round(dx / g.cfg.World.Width * float64(vp.Cols)))
}
