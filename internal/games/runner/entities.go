package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

// ObstacleKind tags what an obstacle is and how it behaves.
type ObstacleKind int

const (
	Misfolded   ObstacleKind = iota // always available
	StopCodon                       // unlocked at a later generation
	Degradation                     // sinks toward the ground while scrolling
)

func (k ObstacleKind) String() string {
	switch k {
	case StopCodon:
		return "stop_codon"
	case Degradation:
		return "degradation"
	default:
		return "misfolded"
	}
}

// Obstacle is a hazard drifting in from the right. Positions are screen-space
// world units.
type Obstacle struct {
	Kind ObstacleKind
	Pos  core.Vec2
	Size float64
}

// HitRadius returns the collision radius.
func (o Obstacle) HitRadius(ratio float64) float64 {
	return o.Size * ratio
}

// Collectible is a beneficial mutation floating above the ground.
type Collectible struct {
	Pos   core.Vec2
	Great bool
	Bob   float64
}

// BobbedY returns the y position including the bob offset.
func (c Collectible) BobbedY(amp float64) float64 {
	return c.Pos.Y + math.Sin(c.Bob)*amp
}

// spawn rolls the obstacle and collectible spawners for this step.
// Spawn chance is dt / interval, so the expected rate is frame-rate independent.
func (g *Game) spawn(dt float64) {
	o := &g.cfg.Obstacles
	interval := max(o.MinInterval, o.BaseInterval-float64(g.generation)*o.IntervalPerGen)
	if g.rng.Float64() < dt/interval {
		g.spawnObstacle()
	}
	if g.rng.Float64() < dt/g.cfg.Collectibles.Interval {
		g.spawnCollectible()
	}
}

// availableKinds lists obstacle kinds unlocked at the current generation.
func (g *Game) availableKinds() []ObstacleKind {
	kinds := []ObstacleKind{Misfolded}
	if g.generation >= g.cfg.Obstacles.StopCodonGen {
		kinds = append(kinds, StopCodon)
	}
	if g.generation >= g.cfg.Obstacles.DegradationGen {
		kinds = append(kinds, Degradation)
	}
	return kinds
}

func (g *Game) spawnObstacle() {
	o := &g.cfg.Obstacles
	kinds := g.availableKinds()
	kind := kinds[g.rng.Intn(len(kinds))]

	x := g.cfg.World.Width + o.SpawnOffset
	ground := g.groundAt(x)
	lo := o.Clearance
	hi := min(ground-spawnCeilingGap, g.cfg.World.Height*0.5)
	y := ground - lo - g.rng.Float64()*(hi-lo)

	g.obstacles = append(g.obstacles, Obstacle{
		Kind: kind,
		Pos:  core.Vec2{X: x, Y: y},
		Size: o.MinSize + g.rng.Float64()*o.SizeRange,
	})
}

func (g *Game) spawnCollectible() {
	c := &g.cfg.Collectibles
	x := g.cfg.World.Width + g.cfg.Obstacles.SpawnOffset
	ground := g.groundAt(x)
	y := ground - c.HeightOffset - g.rng.Float64()*g.cfg.World.Height*c.HeightRange
	great := g.rng.Float64() < c.GreatChance

	g.collectibles = append(g.collectibles, Collectible{
		Pos:   core.Vec2{X: x, Y: y},
		Great: great,
		Bob:   g.rng.Float64() * math.Pi * 2,
	})
}

// updateObstacles scrolls obstacles and reports whether one hit the player.
func (g *Game) updateObstacles(dt float64) bool {
	o := &g.cfg.Obstacles
	kept := g.obstacles[:0]
	hit := false
	for _, ob := range g.obstacles {
		ob.Pos.X -= g.speed * dt
		if ob.Kind == Degradation {
			ob.Pos.Y += o.DegradationDrift * dt
		}
		if ob.Pos.X+ob.Size < -offscreenMargin {
			continue
		}
		if core.CirclesOverlap(g.player.Pos, g.player.Radius, ob.Pos, ob.HitRadius(o.HitRatio)) {
			hit = true
		}
		kept = append(kept, ob)
	}
	g.obstacles = kept
	return hit
}

// updateCollectibles scrolls collectibles and applies pickups.
func (g *Game) updateCollectibles(dt float64) {
	c := &g.cfg.Collectibles
	kept := g.collectibles[:0]
	for _, col := range g.collectibles {
		col.Pos.X -= g.speed * dt
		col.Bob += c.BobSpeed * dt
		if col.Pos.X < -offscreenMargin {
			continue
		}

		at := core.Vec2{X: col.Pos.X, Y: col.BobbedY(c.BobAmp)}
		if core.CirclesOverlap(g.player.Pos, g.player.Radius, at, c.PickupRadius) {
			bonus, color := c.Bonus, core.ColorBrightGreen
			if col.Great {
				bonus, color = c.GreatBonus, core.ColorGold
			}
			g.fitness += float64(bonus)
			g.effects.Burst(g.rng, col.Pos, color, pickupParticles, pickupSpeed, pickupLife)
			g.effects.Float(col.Pos, fmt.Sprintf("+%d", bonus), color, g.cfg.Effects.TextLife, g.cfg.Effects.TextRise)
			continue
		}
		kept = append(kept, col)
	}
	g.collectibles = kept
}
