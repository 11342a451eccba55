package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lab-arcade/internal/field"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(game, format string, args ...any) error {
	return fmt.Errorf("config: %s: %s: %w", game, fmt.Sprintf(format, args...), ErrInvalid)
}

func (w World) validate(game string) error {
	if w.Width <= 0 || w.Height <= 0 {
		return invalid(game, "world size %vx%v must be positive", w.Width, w.Height)
	}
	return nil
}

func (e Effects) validate(game string) error {
	if e.ParticleCap < 0 || e.TouchParticleCap < 0 {
		return invalid(game, "particle caps must not be negative")
	}
	return nil
}

// Validate returns the first setting that would break the runner.
func (c RunnerConfig) Validate() error {
	const game = "runner"
	if err := c.World.validate(game); err != nil {
		return err
	}
	switch {
	case c.Physics.Gravity <= 0:
		return invalid(game, "physics.gravity must be positive")
	case c.Physics.JumpImpulse >= 0:
		return invalid(game, "physics.jump_impulse must be negative (y grows downward)")
	case c.Physics.BaseSpeed <= 0:
		return invalid(game, "physics.base_speed must be positive")
	case c.Physics.PlayerRadius <= 0:
		return invalid(game, "physics.player_radius must be positive")
	case c.Physics.PlayerXRatio <= 0 || c.Physics.PlayerXRatio >= 1:
		return invalid(game, "physics.player_x_ratio must be in (0, 1)")
	case c.Terrain.SegmentWidth <= 0:
		return invalid(game, "terrain.segment_width must be positive")
	case c.Generation.Frames <= 0:
		return invalid(game, "generation.frames must be positive")
	case c.Obstacles.MinInterval <= 0:
		return invalid(game, "obstacles.min_interval must be positive")
	case c.Collectibles.Interval <= 0:
		return invalid(game, "collectibles.interval must be positive")
	case c.Collectibles.GreatChance < 0 || c.Collectibles.GreatChance > 1:
		return invalid(game, "collectibles.great_chance must be in [0, 1]")
	case c.Death.DelayMS < 0:
		return invalid(game, "death.delay_ms must not be negative")
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return invalid(game, "difficulty.initial_level must be in [0, 1]")
	}
	return c.Effects.validate(game)
}

// Validate returns the first setting that would break the adaptive walk.
func (c PeaksConfig) Validate() error {
	const game = "peaks"
	if err := c.World.validate(game); err != nil {
		return err
	}
	l := c.Landscape
	r := c.Rounds
	switch {
	case c.Physics.Gravity <= 0:
		return invalid(game, "physics.gravity must be positive")
	case c.Physics.JumpImpulse >= 0:
		return invalid(game, "physics.jump_impulse must be negative (y grows downward)")
	case c.Physics.Friction < 0 || c.Physics.Friction > 1:
		return invalid(game, "physics.friction must be in [0, 1]")
	case c.Physics.BounceDamping < 0 || c.Physics.BounceDamping > 1:
		return invalid(game, "physics.bounce_damping must be in [0, 1]")
	case l.Spacing <= 0:
		return invalid(game, "landscape.spacing must be positive")
	case l.MinPeaks < 1 || l.MaxPeaks < l.MinPeaks:
		return invalid(game, "landscape peak count range [%d, %d] is empty", l.MinPeaks, l.MaxPeaks)
	case l.WidthMin <= 0 || l.WidthMax < l.WidthMin:
		return invalid(game, "landscape width range [%v, %v] is invalid", l.WidthMin, l.WidthMax)
	case l.PeakMax < l.PeakMin:
		return invalid(game, "landscape peak height range [%v, %v] is invalid", l.PeakMin, l.PeakMax)
	case r.FirstDrift <= 0 || r.Drift <= 0 || r.DriftFloor <= 0:
		return invalid(game, "rounds drift durations must be positive")
	case r.Pressure <= 0:
		return invalid(game, "rounds.pressure must be positive")
	case r.WaterEase <= 0 || r.WaterEase > 1:
		return invalid(game, "rounds.water_ease must be in (0, 1]")
	case r.SafetyBuffer < 0:
		return invalid(game, "rounds.safety_buffer must not be negative")
	case r.ShortestRounds < r.SafeRounds:
		return invalid(game, "rounds.shortest_rounds must not be below rounds.safe_rounds")
	case c.Collectibles.Interval <= 0:
		return invalid(game, "collectibles.interval must be positive")
	}
	return c.Effects.validate(game)
}

// Validate returns the first setting that would break RNA Destroyer.
func (c RnaseConfig) Validate() error {
	const game = "rnase"
	m, err := field.ParseMaze(c.Maze.Layout)
	if err != nil {
		return fmt.Errorf("config: %s: maze.layout: %w", game, err)
	}
	inside := func(p TilePos) bool {
		return p.Col >= 0 && p.Col < m.Cols() && p.Row >= 0 && p.Row < m.Rows()
	}
	switch {
	case c.Maze.TileSize <= 0:
		return invalid(game, "maze.tile_size must be positive")
	case m.Total() == 0:
		return invalid(game, "maze.layout has no RNA to eat")
	case !inside(c.Maze.Door) || !inside(c.Maze.Exit) || !inside(c.Maze.Home):
		return invalid(game, "maze door, exit and home must lie inside the layout")
	case !inside(c.Player.Start) || !m.Passable(c.Player.Start.Col, c.Player.Start.Row, false):
		return invalid(game, "player.start %+v is not an open tile", c.Player.Start)
	case c.Player.Lives < 1:
		return invalid(game, "player.lives must be at least 1")
	case c.Player.SpeedDiv <= 0 || c.Ghosts.SpeedDiv <= 0:
		return invalid(game, "speed_div must be positive")
	case len(c.Ghosts.Starts) == 0:
		return invalid(game, "ghosts.starts is empty")
	case len(c.Ghosts.Names) < len(c.Ghosts.Starts):
		return invalid(game, "ghosts.names has %d entries for %d ghosts", len(c.Ghosts.Names), len(c.Ghosts.Starts))
	case len(c.Ghosts.Schedule) == 0:
		return invalid(game, "ghosts.schedule is empty")
	case c.Ghosts.HitRatio <= 0:
		return invalid(game, "ghosts.hit_ratio must be positive")
	}
	for i, s := range c.Ghosts.Starts {
		if !inside(s) || !m.Passable(s.Col, s.Row, true) {
			return invalid(game, "ghosts.starts[%d] %+v is not an open tile", i, s)
		}
	}
	return c.Effects.validate(game)
}
