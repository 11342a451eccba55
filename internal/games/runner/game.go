// Package runner implements the Fitness Landscape Runner: a protein rides an
// endless fitness landscape, jumping to stay clear of the ground while
// misfolded proteins, stop codons and degradation tags scroll in.
package runner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/lab-arcade/internal/config"
	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/field"
	"github.com/vovakirdan/lab-arcade/internal/registry"
)

const (
	// GameID is the registry and storage identifier.
	GameID = "runner"

	// BestKey is the persistent best-score key. The best score is the
	// generation count.
	BestKey = "fitness_highscore"

	// Code unlocks the runner from the menu.
	Code = "TCGCAT"
)

// Effect tuning that never needed to be configurable.
const (
	jumpParticles    = 8
	jumpSpeed        = 3.0
	jumpLife         = 25.0
	pickupParticles  = 12
	pickupSpeed      = 4.0
	pickupLife       = 30.0
	deathSpeed       = 5.0
	deathLife        = 40.0
	offscreenMargin  = 50.0
	spawnCeilingGap  = 80.0
	bannerTextFormat = "== SELECTION ROUND %d =="
)

var gameOverMessages = []string{
	"Lethal mutation detected. Evolution is harsh.",
	"Your protein was selected... against.",
	"Fitness: 0. Back to the primordial soup.",
	"The fitness landscape claimed another molecule.",
	"Truncated by a stop codon. Classic.",
	"Aggregated beyond rescue. GG.",
	"You've been outcompeted. Survival of the fittest.",
	"Degradation signal received. Proteasome inbound.",
	"Frame-shifted into oblivion.",
	"Negative selection is unforgiving.",
	"Your Kd was too high. Nature noticed.",
	"Lost in sequence space. Try a different trajectory.",
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

// Player is the protein the user steers.
type Player struct {
	Pos    core.Vec2
	VY     float64
	Radius float64
	Glow   float64
	Jumps  int
	Alive  bool
}

// Game implements the Fitness Landscape Runner logic.
type Game struct {
	runtime    core.RuntimeConfig
	host       core.Host
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	terrain      *field.Terrain
	effects      *core.Effects
	player       Player
	obstacles    []Obstacle
	collectibles []Collectible

	scroll      float64
	speed       float64
	generation  int
	genTimer    float64
	fitness     float64
	banner      string
	bannerTimer float64
	shake       float64
	shakeTimer  float64

	state     phase
	paused    bool
	exited    bool
	message   string
	best      int
	newBest   bool
	tickCount int

	// epoch changes on every Reset and Exit; delayed callbacks compare it
	// before touching state.
	epoch      uint64
	deathTimer *core.Timer
}

// configPath stores the custom config path set via CLI
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

// New creates a new runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fitness Landscape Runner"
}

// UnlockCode returns the menu secret for this game.
func (g *Game) UnlockCode() string {
	return Code
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig, host core.Host) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, host, cfg)
}

// ResetWith restarts the game with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, host core.Host, cfg config.RunnerConfig) {
	g.deathTimer.Cancel()
	g.epoch++
	if host == nil {
		host = core.NewHeadlessHost()
	}

	g.runtime = runtime
	g.host = host
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	w, h := cfg.World.Width, cfg.World.Height
	waves := make([]field.Wave, len(cfg.Terrain.Waves))
	for i, wv := range cfg.Terrain.Waves {
		waves[i] = field.Wave{Freq: wv.Freq, Phase: wv.Phase, Amp: wv.Amp}
	}
	initial := int(w/cfg.Terrain.SegmentWidth) + 1 + cfg.Terrain.InitialExtra
	g.terrain = field.NewTerrain(field.TerrainParams{
		Height:       h,
		SegmentWidth: cfg.Terrain.SegmentWidth,
		BaseRatio:    cfg.Terrain.BaseRatio,
		Waves:        waves,
		Rough:        field.Wave{Freq: cfg.Terrain.Rough.Freq, Phase: cfg.Terrain.Rough.Phase},
		RoughRate:    cfg.Terrain.RoughRate,
		RoughCap:     cfg.Terrain.RoughCap,
	}, initial)
	g.effects = core.NewEffects(cfg.Effects.Cap(runtime.Touch), cfg.Effects.Gravity)

	g.player = Player{
		Pos:    core.Vec2{X: w * cfg.Physics.PlayerXRatio, Y: h * cfg.Physics.StartYRatio},
		Radius: cfg.Physics.PlayerRadius,
		Alive:  true,
	}
	g.obstacles = g.obstacles[:0]
	g.collectibles = g.collectibles[:0]

	g.scroll = 0
	g.speed = g.difficulty.Speed(cfg.Physics.BaseSpeed, 0, 0)
	g.generation = 0
	g.genTimer = 0
	g.fitness = 0
	g.banner = ""
	g.bannerTimer = 0
	g.shake = 0
	g.shakeTimer = 0

	g.state = phasePlaying
	g.paused = false
	g.exited = false
	g.message = ""
	g.newBest = false
	g.tickCount = 0
	g.best = host.BestScore(BestKey)
	g.deathTimer = nil
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
	cfg := &g.cfg
	w := cfg.World.Width

	if in.Has(core.ActionJump) {
		g.jump()
	}

	g.speed = g.difficulty.Speed(cfg.Physics.BaseSpeed, g.generation, g.tickCount)
	g.scroll += g.speed * dt
	g.terrain.SetProgress(g.scroll)
	g.terrain.EnsureAhead(w + g.scroll + cfg.Terrain.Lookahead)

	p := &g.player
	p.VY += cfg.Physics.Gravity * dt
	p.Pos.Y += p.VY * dt
	if p.Pos.Y-p.Radius < 0 {
		p.Pos.Y = p.Radius
		p.VY = 0
	}
	p.Glow = max(p.Glow-dt, 0)

	if p.Pos.Y+p.Radius >= g.groundAt(p.Pos.X) {
		g.die()
		return
	}

	g.genTimer += dt
	for g.genTimer >= cfg.Generation.Frames {
		g.genTimer -= cfg.Generation.Frames
		g.generation++
		if every := cfg.Generation.BannerEvery; every > 0 && g.generation%every == 0 {
			g.banner = fmt.Sprintf(bannerTextFormat, g.generation/every)
			g.bannerTimer = cfg.Generation.BannerFrames
		}
	}
	g.fitness += cfg.Generation.FitnessPerFrame * dt

	g.spawn(dt)
	if g.updateObstacles(dt) {
		g.die()
		return
	}
	g.updateCollectibles(dt)

	if g.bannerTimer > 0 {
		g.bannerTimer -= dt
		if g.bannerTimer <= 0 {
			g.banner = ""
		}
	}
}

// groundAt returns the terrain y under a screen-space x.
func (g *Game) groundAt(x float64) float64 {
	return g.terrain.HeightAt(x + g.scroll)
}

func (g *Game) jump() {
	if !g.player.Alive {
		return
	}
	g.player.VY = g.cfg.Physics.JumpImpulse
	g.player.Jumps++
	g.player.Glow = g.cfg.Physics.JumpGlow
	g.effects.Burst(g.rng, g.player.Pos, core.ColorBrightCyan, jumpParticles, jumpSpeed, jumpLife)
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

// die freezes the run and schedules the results screen.
func (g *Game) die() {
	if !g.player.Alive {
		return
	}
	g.player.Alive = false
	g.state = phaseDying
	g.shake = g.cfg.Death.Shake
	g.shakeTimer = g.cfg.Death.ShakeFrames
	g.effects.Burst(g.rng, g.player.Pos, core.ColorRed, g.cfg.Death.Particles, deathSpeed, deathLife)

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
	if g.host.SaveBestScore(BestKey, g.generation) {
		g.best = g.generation
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

// Generation returns the number of generations survived.
func (g *Game) Generation() int {
	return g.generation
}

// Fitness returns the accumulated fitness.
func (g *Game) Fitness() float64 {
	return g.fitness
}

// Message returns the game-over message, empty while playing.
func (g *Game) Message() string {
	return g.message
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.generation,
		Best:     g.best,
		GameOver: g.state == phaseOver,
		Paused:   g.paused,
		Exited:   g.exited,
		HUD: []core.HUDValue{
			{Label: "Generation", Value: fmt.Sprint(g.generation)},
			{Label: "Fitness", Value: fmt.Sprint(int(g.fitness))},
			{Label: "Speed", Value: fmt.Sprintf("%.1f", g.speed)},
			{Label: "Best", Value: fmt.Sprint(g.best)},
		},
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
