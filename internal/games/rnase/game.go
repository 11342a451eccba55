// Package rnase implements RNA Destroyer: an RNase enzyme clears a maze of
// RNA strands while four RNase inhibitors hunt it. Hairpins turn the
// inhibitors vulnerable for a while.
package rnase

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lab-arcade/internal/config"
	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/field"
	"github.com/vovakirdan/lab-arcade/internal/registry"
)

const (
	// GameID is the registry and storage identifier.
	GameID = "rnase"

	// BestKey is the persistent best-score key.
	BestKey = "rnase_highscore"

	// Code unlocks RNA Destroyer from the menu.
	Code = "RNASE"
)

const (
	powerParticles = 14
	powerSpeed     = 3.0
	powerLife      = 30.0
	eatParticles   = 16
	eatSpeed       = 4.0
	eatLife        = 35.0
	deathParticles = 24
	deathSpeed     = 3.0
	deathLife      = 60.0
)

// play is the state machine between levels, lives and results.
type play int

const (
	playReady play = iota
	playActive
	playDying
	playLevelDone
	playOver
)

func (p play) String() string {
	switch p {
	case playReady:
		return "ready"
	case playActive:
		return "playing"
	case playDying:
		return "dying"
	case playLevelDone:
		return "level_complete"
	default:
		return "over"
	}
}

// Game implements the RNA Destroyer logic.
type Game struct {
	runtime core.RuntimeConfig
	host    core.Host
	cfg     config.RnaseConfig
	rng     *rand.Rand

	template *field.Maze
	maze     *field.Maze
	bases    []int // RNA base index per tile, for pellet letters
	effects  *core.Effects
	player   Player
	ghosts   []Ghost

	score    int
	lives    int
	level    int
	rnaEaten int

	mode        Mode
	modeCycle   int
	modeTimer   float64
	frightTimer float64
	combo       int

	play       play
	pauseTimer float64 // frames left in ready, dying or level-complete
	deathAnim  float64

	paused    bool
	exited    bool
	best      int
	newBest   bool
	tickCount int
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

// New creates a new RNA Destroyer instance.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string         { return GameID }
func (g *Game) Title() string      { return "RNA Destroyer" }
func (g *Game) UnlockCode() string { return Code }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig, host core.Host) {
	cfg, err := config.LoadRnase(configPath)
	if err != nil {
		cfg = config.DefaultRnaseConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRnasePreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, host, cfg)
}

// ResetWith restarts the game with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, host core.Host, cfg config.RnaseConfig) {
	if host == nil {
		host = core.NewHeadlessHost()
	}
	maze, err := field.ParseMaze(cfg.Maze.Layout)
	if err != nil {
		maze = field.MustParseMaze(field.DefaultMaze)
	}

	g.runtime = runtime
	g.host = host
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.template = maze
	g.effects = core.NewEffects(cfg.Effects.Cap(runtime.Touch), cfg.Effects.Gravity)

	g.score = 0
	g.lives = cfg.Player.Lives
	g.level = 1
	g.rnaEaten = 0

	g.paused = false
	g.exited = false
	g.newBest = false
	g.tickCount = 0
	g.best = host.BestScore(BestKey)

	g.startLevel()
}

// startLevel lays out a fresh maze, places everyone and shows READY.
func (g *Game) startLevel() {
	g.maze = g.template.Clone()
	g.bases = make([]int, g.maze.Cols()*g.maze.Rows())
	for i := range g.bases {
		g.bases[i] = g.rng.Intn(len(rnaBases))
	}
	g.initPlayer()
	g.initGhosts()
	g.resetModes()
	g.combo = 0
	g.effects.Reset()
	g.play = playReady
	g.pauseTimer = g.cfg.Timing.Ready
}

func (g *Game) nextLevel() {
	g.level++
	g.startLevel()
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
	if g.play == playOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.ResetWith(g.runtime, g.host, g.cfg)
		}
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Input only queues intent; the move happens at the next tile center.
	if d, ok := dirFor(in); ok {
		g.player.Next = d
	}

	g.tickCount++
	switch g.play {
	case playLevelDone:
		g.pauseTimer -= dt
		if g.pauseTimer <= 0 {
			g.nextLevel()
		}
	case playReady:
		g.pauseTimer -= dt
		if g.pauseTimer <= 0 {
			g.play = playActive
		}
	case playDying:
		g.pauseTimer -= dt
		g.deathAnim += dt
		if g.pauseTimer <= 0 {
			g.afterDeath()
		}
	case playActive:
		g.update(dt)
	}
	g.effects.Update(dt)

	return core.StepResult{State: g.State()}
}

func (g *Game) update(dt float64) {
	g.movePlayer(dt)
	g.collect()
	g.updateModes(dt)
	for i := range g.ghosts {
		g.moveGhost(&g.ghosts[i], dt)
	}
	if g.checkCollisions() {
		return
	}
	if g.maze.Remaining() == 0 {
		g.play = playLevelDone
		g.pauseTimer = g.cfg.Timing.LevelComplete
	}
}

// checkCollisions resolves contact between the player and roaming ghosts.
// Reports whether the player died.
func (g *Game) checkCollisions() bool {
	reach := g.cfg.Maze.TileSize * g.cfg.Ghosts.HitRatio
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if !gh.Active() || core.Dist(g.player.Pos, gh.Pos) >= reach {
			continue
		}
		if gh.Frightened {
			g.eatGhost(gh)
			continue
		}
		g.loseLife()
		return true
	}
	return false
}

// eatGhost sends a frightened ghost home. Each ghost in one frightened spell
// is worth double the previous one.
func (g *Game) eatGhost(gh *Ghost) {
	gh.Eaten = true
	g.combo++
	bonus := g.cfg.Scoring.GhostBase << (g.combo - 1)
	g.score += bonus
	g.effects.Burst(g.rng, gh.Pos, core.ColorBrightBlue, eatParticles, eatSpeed, eatLife)
	g.effects.Float(gh.Pos, fmt.Sprintf("+%d", bonus), core.ColorBrightCyan, g.cfg.Effects.TextLife, g.cfg.Effects.TextRise)
}

func (g *Game) loseLife() {
	g.player.Alive = false
	g.lives--
	g.play = playDying
	g.pauseTimer = g.cfg.Timing.Death
	g.deathAnim = 0
	g.effects.Burst(g.rng, g.player.Pos, core.ColorGold, deathParticles, deathSpeed, deathLife)
}

// afterDeath respawns everyone on the same maze, or ends the run.
func (g *Game) afterDeath() {
	if g.lives <= 0 {
		g.finish()
		return
	}
	g.initPlayer()
	g.initGhosts()
	g.play = playReady
	g.pauseTimer = g.cfg.Timing.Ready
}

func (g *Game) finish() {
	g.play = playOver
	if g.host.SaveBestScore(BestKey, g.score) {
		g.best = g.score
		g.newBest = true
	}
}

// Exit leaves the game. Every pause in this game is frame-counted, so
// nothing is left scheduled on the host.
func (g *Game) Exit() {
	g.exited = true
	g.paused = false
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// RNAEaten returns the pellets eaten over the whole run.
func (g *Game) RNAEaten() int { return g.rnaEaten }

// Mode returns the global ghost mode.
func (g *Game) Mode() Mode { return g.mode }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.play == playOver,
		Paused:   g.paused,
		Exited:   g.exited,
		HUD: []core.HUDValue{
			{Label: "Score", Value: fmt.Sprint(g.score)},
			{Label: "Level", Value: fmt.Sprint(g.level)},
			{Label: "Lives", Value: fmt.Sprint(max(g.lives, 0))},
			{Label: "RNA eaten", Value: fmt.Sprint(g.rnaEaten)},
			{Label: "Best", Value: fmt.Sprint(g.best)},
		},
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
