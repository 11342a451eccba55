// Package peaks implements Adaptive Walk: a genotype walks a fitness landscape
// of Gaussian peaks while the water of negative selection rises each round.
// Survive the pressure phase by reaching high ground.
package peaks

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/lab-arcade/internal/config"
	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/field"
	"github.com/vovakirdan/lab-arcade/internal/registry"
)

const (
	// GameID is the registry and storage identifier.
	GameID = "peaks"

	// BestKey is the persistent best-score key.
	BestKey = "adaptive_highscore"

	// Code unlocks Adaptive Walk from the menu.
	Code = "ADAPT"
)

const (
	jumpParticles   = 6
	jumpSpeed       = 2.5
	jumpLife        = 20.0
	pickupParticles = 10
	pickupSpeed     = 3.5
	pickupLife      = 28.0
	deathSpeed      = 4.0
	deathLife       = 45.0
	bonusParticles  = 24
	edgeMargin      = 0.05
)

var gameOverMessages = []string{
	"Drowned in a fitness valley.",
	"Selection pressure wins this round.",
	"Your lineage ends here. Try climbing sooner.",
	"Stuck on a local optimum. The water was patient.",
	"Genetic drift was not enough to save you.",
	"Purifying selection, applied.",
	"The global peak was right there.",
	"Extinct. The landscape moves on without you.",
}

type phase int

const (
	phasePlaying phase = iota
	phaseDying
	phaseOver
)

func (p phase) String() string {
	switch p {
	case phasePlaying:
		return "playing"
	case phaseDying:
		return "dying"
	default:
		return "over"
	}
}

// Walker is the genotype the user steers across the landscape.
type Walker struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Cooldown float64
	OnGround bool
	Alive    bool
}

// Pickup is a beneficial mutation hovering over the landscape. Its height
// follows the terrain underneath as the landscape morphs.
type Pickup struct {
	X   float64
	Bob float64
}

// Game implements the Adaptive Walk logic.
type Game struct {
	runtime core.RuntimeConfig
	host    core.Host
	cfg     config.PeaksConfig
	rng     *rand.Rand

	land    *field.Landscape
	effects *core.Effects
	walker  Walker
	pickups []Pickup

	round      int
	phase      Phase
	phaseTimer float64
	phaseTotal float64
	peaks      []field.Peak
	waterBase  float64
	water      float64
	target     float64
	oscClock   float64

	score      float64
	shake      float64
	shakeTimer float64

	state     phase
	paused    bool
	exited    bool
	message   string
	best      int
	newBest   bool
	tickCount int

	epoch      uint64
	deathTimer *core.Timer
}

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Adaptive Walk instance.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string         { return GameID }
func (g *Game) Title() string      { return "Adaptive Walk" }
func (g *Game) UnlockCode() string { return Code }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig, host core.Host) {
	cfg, err := config.LoadPeaks(configPath)
	if err != nil {
		cfg = config.DefaultPeaksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPeaksPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, host, cfg)
}

// ResetWith restarts the game with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, host core.Host, cfg config.PeaksConfig) {
	g.deathTimer.Cancel()
	g.epoch++
	if host == nil {
		host = core.NewHeadlessHost()
	}

	g.runtime = runtime
	g.host = host
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	params := g.landscapeParams()
	g.land = field.NewLandscape(params, field.Generate(g.rng, params))
	g.effects = core.NewEffects(cfg.Effects.Cap(runtime.Touch), cfg.Effects.Gravity)

	// Start on the highest ground of the opening landscape.
	g.peaks = field.FindPeaks(g.land.Current, params.Spacing)
	start := globalPeak(g.peaks)
	g.walker = Walker{
		Pos:    core.Vec2{X: start.X, Y: start.Y - cfg.Physics.PlayerRadius},
		Radius: cfg.Physics.PlayerRadius,
		Alive:  true,
	}
	g.pickups = g.pickups[:0]

	g.score = 0
	g.shake = 0
	g.shakeTimer = 0
	g.oscClock = 0
	g.waterBase = g.driftLevel()
	g.water = g.waterBase

	g.state = phasePlaying
	g.paused = false
	g.exited = false
	g.message = ""
	g.newBest = false
	g.tickCount = 0
	g.best = host.BestScore(BestKey)
	g.deathTimer = nil

	g.round = 1
	g.beginDrift()
}

func (g *Game) landscapeParams() field.LandscapeParams {
	l := g.cfg.Landscape
	return field.LandscapeParams{
		Width:      g.cfg.World.Width,
		Height:     g.cfg.World.Height,
		Spacing:    l.Spacing,
		BaseRatio:  l.BaseRatio,
		MinPeaks:   l.MinPeaks,
		MaxPeaks:   l.MaxPeaks,
		PeakMin:    l.PeakMin,
		PeakMax:    l.PeakMax,
		WidthMin:   l.WidthMin,
		WidthMax:   l.WidthMax,
		EdgeMargin: l.EdgeMargin,
		RippleAmp:  l.RippleAmp,
		RippleFreq: l.RippleFreq,
		TopMargin:  l.TopMargin,
	}
}

// Step advances the simulation by dt nominal frames.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.exited || g.host == nil {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionExit) {
		g.Exit()
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case phaseOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.ResetWith(g.runtime, g.host, g.cfg)
		}
		return core.StepResult{State: g.State()}
	case phasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.state == phasePlaying {
		g.update(dt, in)
	}
	g.effects.Update(dt)
	g.updateShake(dt)

	return core.StepResult{State: g.State()}
}

func (g *Game) update(dt float64, in core.InputFrame) {
	g.land.Morph(g.morphRate(), dt)
	g.updateWalker(dt, in)
	g.updateRounds(dt)
	g.updateWater(dt)

	if g.walker.Pos.Y > g.water {
		g.die()
		return
	}

	g.score += g.cfg.Physics.PointsPerTick * dt
	g.spawnPickup(dt)
	g.updatePickups(dt)
}

// updateWalker applies intent, gravity and the landscape contact.
func (g *Game) updateWalker(dt float64, in core.InputFrame) {
	ph := &g.cfg.Physics
	w := &g.walker

	axis := in.Axis()
	if axis != 0 {
		w.Vel.X += axis * ph.Accel * dt
	} else {
		w.Vel.X *= math.Pow(ph.Friction, dt)
	}
	w.Vel.X = core.ClampF(w.Vel.X, -ph.MaxSpeed, ph.MaxSpeed)

	w.Cooldown = max(w.Cooldown-dt, 0)
	if in.Has(core.ActionJump) && w.OnGround && w.Cooldown == 0 {
		w.Vel.Y = ph.JumpImpulse
		w.Cooldown = ph.JumpCooldown
		w.OnGround = false
		g.effects.Burst(g.rng, w.Pos, core.ColorBrightCyan, jumpParticles, jumpSpeed, jumpLife)
	}

	w.Vel.Y += ph.Gravity * dt
	w.Pos = w.Pos.Add(w.Vel.Scale(dt))

	width := g.cfg.World.Width
	if w.Pos.X < w.Radius {
		w.Pos.X, w.Vel.X = w.Radius, 0
	} else if w.Pos.X > width-w.Radius {
		w.Pos.X, w.Vel.X = width-w.Radius, 0
	}
	if w.Pos.Y < w.Radius {
		w.Pos.Y, w.Vel.Y = w.Radius, 0
	}

	g.landOn(g.land.HeightAt(w.Pos.X))
}

// landOn resolves contact with the ground at y: the walker bounces with
// damping and comes to rest once the rebound falls under the threshold.
func (g *Game) landOn(ground float64) {
	ph := &g.cfg.Physics
	w := &g.walker
	if w.Pos.Y+w.Radius < ground {
		w.OnGround = false
		return
	}
	w.Pos.Y = ground - w.Radius
	if w.Vel.Y > 0 {
		w.Vel.Y = -w.Vel.Y * ph.BounceDamping
		if -w.Vel.Y < ph.RestThreshold {
			w.Vel.Y = 0
		}
	}
	w.OnGround = w.Vel.Y == 0
}

func (g *Game) spawnPickup(dt float64) {
	c := &g.cfg.Collectibles
	if len(g.pickups) >= c.Max || g.rng.Float64() >= dt/c.Interval {
		return
	}
	width := g.cfg.World.Width
	g.pickups = append(g.pickups, Pickup{
		X:   width*edgeMargin + g.rng.Float64()*width*(1-2*edgeMargin),
		Bob: g.rng.Float64() * math.Pi * 2,
	})
}

// pickupPos returns where a pickup floats this frame.
func (g *Game) pickupPos(p Pickup) core.Vec2 {
	c := &g.cfg.Collectibles
	return core.Vec2{X: p.X, Y: g.land.HeightAt(p.X) - c.Hover + math.Sin(p.Bob)*c.BobAmp}
}

func (g *Game) updatePickups(dt float64) {
	c := &g.cfg.Collectibles
	kept := g.pickups[:0]
	for _, p := range g.pickups {
		p.Bob += c.BobSpeed * dt
		at := g.pickupPos(p)
		if at.Y > g.water {
			// Dissolved by the rising water.
			continue
		}
		if core.CirclesOverlap(g.walker.Pos, g.walker.Radius, at, c.PickupRadius) {
			g.score += float64(c.Bonus)
			g.effects.Burst(g.rng, at, core.ColorMagenta, pickupParticles, pickupSpeed, pickupLife)
			g.effects.Float(at, fmt.Sprintf("+%d", c.Bonus), core.ColorBrightMagenta, g.cfg.Effects.TextLife, g.cfg.Effects.TextRise)
			continue
		}
		kept = append(kept, p)
	}
	g.pickups = kept
}

func (g *Game) updateShake(dt float64) {
	if g.shakeTimer > 0 {
		g.shakeTimer -= dt
		g.shake *= g.cfg.Death.ShakeDecay
		if g.shakeTimer <= 0 {
			g.shake = 0
		}
	}
}

func (g *Game) die() {
	if !g.walker.Alive {
		return
	}
	g.walker.Alive = false
	g.state = phaseDying
	g.shake = g.cfg.Death.Shake
	g.shakeTimer = g.cfg.Death.ShakeFrames
	g.effects.Burst(g.rng, g.walker.Pos, core.ColorBlue, g.cfg.Death.Particles, deathSpeed, deathLife)

	epoch := g.epoch
	g.deathTimer = g.host.After(time.Duration(g.cfg.Death.DelayMS)*time.Millisecond, func() {
		if g.epoch != epoch || g.exited {
			return
		}
		g.finish()
	})
}

func (g *Game) finish() {
	g.deathTimer = nil
	g.state = phaseOver
	g.message = gameOverMessages[g.rng.Intn(len(gameOverMessages))]
	if g.host.SaveBestScore(BestKey, g.Score()) {
		g.best = g.Score()
		g.newBest = true
	}
}

// Exit leaves the game. Any pending death transition is cancelled.
func (g *Game) Exit() {
	g.deathTimer.Cancel()
	g.deathTimer = nil
	g.epoch++
	g.exited = true
	g.paused = false
}

// Score returns the whole-point score.
func (g *Game) Score() int {
	return int(g.score)
}

// Round returns the current generation number, starting at 1.
func (g *Game) Round() int {
	return g.round
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Message returns the game-over message, empty while playing.
func (g *Game) Message() string {
	return g.message
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Best:     g.best,
		GameOver: g.state == phaseOver,
		Paused:   g.paused,
		Exited:   g.exited,
		HUD: []core.HUDValue{
			{Label: "Generation", Value: fmt.Sprint(g.round)},
			{Label: "Phase", Value: fmt.Sprintf("%s %ds", g.phase, g.PhaseSeconds())},
			{Label: "Mutation rate", Value: percent(g.MutationRate())},
			{Label: "Selection pressure", Value: percent(g.SelectionPressure())},
			{Label: "Score", Value: fmt.Sprint(g.Score())},
			{Label: "Best", Value: fmt.Sprint(g.best)},
		},
	}
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(core.Clamp01(v)*100)))
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
