package peaks

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/field"
)

// Phase is one half of a round.
type Phase int

const (
	// Drift lowers the water while the landscape reshapes.
	Drift Phase = iota
	// Pressure raises the water toward the peaks.
	Pressure
)

func (p Phase) String() string {
	if p == Pressure {
		return "pressure"
	}
	return "drift"
}

const framesPerSecond = 60

// driftDuration is the drift length of a round. The first drift is a longer
// warm-up; later drifts shrink toward the floor.
func (g *Game) driftDuration(round int) float64 {
	r := &g.cfg.Rounds
	if round <= 1 {
		return r.FirstDrift
	}
	return max(r.DriftFloor, r.Drift-float64(round-2)*r.DriftShrink)
}

// pressureDuration grows by a fixed step per round after the first.
func (g *Game) pressureDuration(round int) float64 {
	r := &g.cfg.Rounds
	return r.Pressure + float64(max(round-1, 0))*r.PressureGrowth
}

// morphRate is the per-frame landscape interpolation factor.
func (g *Game) morphRate() float64 {
	l := &g.cfg.Landscape
	return min(l.MorphRateMax, l.MorphRate+float64(g.round-1)*l.MorphPerRnd)
}

// amplitude is the worst-case oscillation of the pressure water.
func (g *Game) amplitude() float64 {
	r := &g.cfg.Rounds
	return min(r.OscMax, r.OscBase+float64(g.round)*r.OscPerRound)
}

// oscillation layers three sines; its magnitude never exceeds amplitude.
func oscillation(t, amplitude float64) float64 {
	return amplitude * (0.5*math.Sin(t*0.021) +
		0.3*math.Sin(t*0.053+1.7) +
		0.2*math.Sin(t*0.137+0.4))
}

func (g *Game) driftLevel() float64 {
	return g.cfg.World.Height * g.cfg.Rounds.DriftLevel
}

// pressureFloor is the highest the eased water may stand: the global peak
// stays above the water even at the top of the oscillation.
func (g *Game) pressureFloor() float64 {
	return globalPeak(g.peaks).Y + g.amplitude() + g.cfg.Rounds.SafetyBuffer
}

// pressureTarget picks the water target for the current round: halfway up
// the shortest peak while the rounds are safe, the shortest summit after
// that, then a creep toward the global summit. The result is clamped to the
// pressure floor.
func (g *Game) pressureTarget() float64 {
	r := &g.cfg.Rounds
	global, shortest := globalPeak(g.peaks), shortestPeak(g.peaks)

	var target float64
	switch {
	case g.round <= r.SafeRounds:
		target = (g.driftLevel() + shortest.Y) / 2
	case g.round <= r.ShortestRounds:
		target = shortest.Y
	default:
		creep := core.Clamp01(float64(g.round-r.ShortestRounds) * r.CreepRate)
		target = core.Lerp(shortest.Y, global.Y, creep)
	}
	return max(target, g.pressureFloor())
}

func (g *Game) beginDrift() {
	g.phase = Drift
	g.phaseTotal = g.driftDuration(g.round)
	g.phaseTimer = g.phaseTotal
	g.land.SetTarget(field.Generate(g.rng, g.landscapeParams()))
	g.peaks = field.FindPeaks(g.land.Target, g.cfg.Landscape.Spacing)
	g.target = g.driftLevel()
}

func (g *Game) beginPressure() {
	g.phase = Pressure
	g.phaseTotal = g.pressureDuration(g.round)
	g.phaseTimer = g.phaseTotal
	g.peaks = field.FindPeaks(g.land.Target, g.cfg.Landscape.Spacing)
	g.target = g.pressureTarget()
	g.oscClock = 0
}

// updateRounds counts the phase down and switches phases on expiry.
// Surviving a pressure phase pays a round-scaled bonus.
func (g *Game) updateRounds(dt float64) {
	g.phaseTimer -= dt
	if g.phaseTimer > 0 {
		return
	}
	if g.phase == Drift {
		g.beginPressure()
		return
	}

	bonus := g.cfg.Rounds.RoundBonus * g.round
	g.score += float64(bonus)
	g.effects.Burst(g.rng, g.walker.Pos, core.ColorGold, bonusParticles, pickupSpeed, pickupLife)
	g.effects.Float(g.walker.Pos, fmt.Sprintf("SURVIVED +%d", bonus), core.ColorGold, g.cfg.Effects.TextLife, g.cfg.Effects.TextRise)

	g.round++
	g.beginDrift()
}

// updateWater eases the water line toward the phase target.
func (g *Game) updateWater(dt float64) {
	k := core.Clamp01(g.cfg.Rounds.WaterEase * dt)
	g.waterBase += (g.target - g.waterBase) * k

	if g.phase == Drift {
		g.water = g.waterBase
		return
	}
	g.oscClock += dt
	g.waterBase = max(g.waterBase, g.pressureFloor())
	g.water = g.waterBase - oscillation(g.oscClock, g.amplitude())
}

// MutationRate is the landscape morph rate relative to its cap, in [0, 1].
func (g *Game) MutationRate() float64 {
	maxRate := g.cfg.Landscape.MorphRateMax
	if maxRate <= 0 {
		return 0
	}
	return core.Clamp01(g.morphRate() / maxRate)
}

// SelectionPressure is how far the water has climbed from the drift level
// toward the global summit, in [0, 1].
func (g *Game) SelectionPressure() float64 {
	span := g.driftLevel() - globalPeak(g.peaks).Y
	if span <= 0 {
		return 1
	}
	return core.Clamp01((g.driftLevel() - g.water) / span)
}

// PhaseSeconds returns the whole seconds left in the current phase.
func (g *Game) PhaseSeconds() int {
	return int(math.Ceil(max(g.phaseTimer, 0) / framesPerSecond))
}

// Water returns the current water line (y-down).
func (g *Game) Water() float64 {
	return g.water
}

func globalPeak(peaks []field.Peak) field.Peak {
	for _, p := range peaks {
		if p.Global {
			return p
		}
	}
	return field.Peak{}
}

// shortestPeak returns the lowest summit (largest y).
func shortestPeak(peaks []field.Peak) field.Peak {
	var low field.Peak
	for i, p := range peaks {
		if i == 0 || p.Y > low.Y {
			low = p
		}
	}
	return low
}
