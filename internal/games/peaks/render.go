package peaks

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

// Visual characters for rendering
const (
	WalkerChar   = '●'
	SummitChar   = '▲'
	SurfaceChar  = '▀'
	SlopeChar    = '▒'
	WaveChar     = '~'
	WaterChar    = '≈'
	MutationChar = '◆'
)

const hudRows = 1

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.land == nil {
		return
	}
	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), dst.Height(), hudRows)
	ox := g.shakeOffset(vp)
	waterRow := max(vp.RowOf(g.water), vp.Top)

	for col := 0; col < vp.Cols; col++ {
		top := max(vp.RowOf(g.land.HeightAt(vp.ColumnX(col-ox))), vp.Top)
		for row := waterRow; row <= vp.Bottom(); row++ {
			if row < top {
				glyph := WaterChar
				if row == waterRow {
					glyph = WaveChar
				}
				dst.SetColored(col, row, glyph, core.ColorBlue)
			}
		}
		dst.SetColored(col, top, SurfaceChar, core.ColorGreen)
		for row := top + 1; row <= vp.Bottom(); row++ {
			c := core.ColorTeal
			if row >= waterRow {
				c = core.ColorNavy
			}
			dst.SetColored(col, row, SlopeChar, c)
		}
	}

	if p := globalPeak(g.peaks); p.Y > 0 {
		x, y := vp.ToCell(core.Vec2{X: p.X, Y: g.land.HeightAt(p.X)})
		dst.SetColored(x+ox, y-1, SummitChar, core.ColorGold)
	}

	for _, p := range g.pickups {
		x, y := vp.ToCell(g.pickupPos(p))
		dst.SetColored(x+ox, y, MutationChar, core.ColorBrightMagenta)
	}

	if g.walker.Alive {
		x, y := vp.ToCell(g.walker.Pos)
		dst.SetColored(x+ox, y, WalkerChar, core.ColorBrightYellow)
	}

	for _, p := range g.effects.Particles {
		x, y := vp.ToCell(p.Pos)
		dst.SetColored(x+ox, y, core.ParticleGlyph(p.Alpha()), core.Fade(p.Color, p.Alpha()))
	}
	for _, t := range g.effects.Texts {
		x, y := vp.ToCell(t.Pos)
		dst.DrawTextColored(x+ox, y, t.Text, core.Fade(t.Color, t.Alpha()))
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
			"EXTINCT",
			g.message,
			"",
			fmt.Sprintf("Generations: %d   Score: %d", g.round, g.Score()),
			best,
			"",
			"R restart  Esc menu",
		}, core.ColorBlue, core.ColorWhite)
	case g.paused:
		dst.DrawPanel([]string{"PAUSED", "Press P to resume"}, core.ColorYellow, core.ColorWhite)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	phaseColor := core.ColorBrightGreen
	if g.phase == Pressure {
		phaseColor = core.ColorBrightRed
	}
	parts := []string{
		fmt.Sprintf(" GEN %d", g.round),
		fmt.Sprintf("%s %ds", strings.ToUpper(g.phase.String()), g.PhaseSeconds()),
		"MUT " + percent(g.MutationRate()),
		"SEL " + percent(g.SelectionPressure()),
		fmt.Sprintf("SCORE %d", g.Score()),
		fmt.Sprintf("BEST %d ", g.best),
	}
	dst.DrawTextColored(1, 0, strings.Join(parts, " │ "), core.ColorBrightWhite)
	// Recolour the phase label.
	x := 1 + len([]rune(parts[0])) + 3
	for i := range []rune(parts[1]) {
		dst.SetColor(x+i, 0, phaseColor)
	}
}

func (g *Game) shakeOffset(vp core.Viewport) int {
	if g.shake <= 0 {
		return 0
	}
	dx := math.Sin(float64(g.tickCount)*1.9) * g.shake
	return int(math.Round(dx / g.cfg.World.Width * float64(vp.Cols)))
}
