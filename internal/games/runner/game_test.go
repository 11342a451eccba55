package runner

import (
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/lab-arcade/internal/config"
	"github.com/vovakirdan/lab-arcade/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T, seed int64) (*Game, *core.HeadlessHost) {
	t.Helper()
	host := core.NewHeadlessHost()
	g := New()
	g.ResetWith(testRuntime(seed), host, config.DefaultRunnerConfig())
	return g, host
}

// stepUntil steps with no input until cond holds, failing after limit steps.
func stepUntil(t *testing.T, g *Game, limit int, cond func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		g.Step(1, core.NewInputFrame())
	}
	if !cond() {
		t.Fatalf("condition not reached after %d steps (snapshot %+v)", limit, g.Snapshot())
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t, 12345)
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			if i%14 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(1, in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Determinism failed:\n%+v\n%+v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Hash mismatch: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestCeilingClampKeepsPlayerAlive(t *testing.T) {
	g, _ := newTestGame(t, 7)
	jump := core.InputOf(core.ActionJump)

	for i := 0; i < 600; i++ {
		g.Step(1, jump)
	}

	snap := g.Snapshot()
	if snap.State != "playing" {
		t.Fatalf("State = %q, expected playing", snap.State)
	}
	if snap.PlayerY != g.cfg.Physics.PlayerRadius {
		t.Errorf("PlayerY = %v, expected clamp to radius %v", snap.PlayerY, g.cfg.Physics.PlayerRadius)
	}
	if g.Generation() != 10 {
		t.Errorf("Generation() = %d, expected 10 after 600 frames", g.Generation())
	}
	if g.banner != "== SELECTION ROUND 1 ==" {
		t.Errorf("banner = %q", g.banner)
	}
	if g.Fitness() < 0.15*600-1e-9 {
		t.Errorf("Fitness() = %v, expected at least %v", g.Fitness(), 0.15*600)
	}
}

func TestDeathTransitionAfterDelay(t *testing.T) {
	g, host := newTestGame(t, 1)

	stepUntil(t, g, 300, func() bool { return g.state == phaseDying })
	if host.PendingTimers() != 1 {
		t.Fatalf("PendingTimers() = %d, expected 1", host.PendingTimers())
	}

	// Frames alone never end the run; only the host timer does.
	for i := 0; i < 100; i++ {
		g.Step(1, core.NewInputFrame())
	}
	if g.State().GameOver {
		t.Fatal("game over before the death delay elapsed")
	}

	host.Advance(599 * time.Millisecond)
	if g.State().GameOver {
		t.Fatal("game over at 599ms")
	}
	host.Advance(time.Millisecond)
	if !g.State().GameOver {
		t.Fatal("expected game over at 600ms")
	}
	if !slices.Contains(gameOverMessages, g.Message()) {
		t.Errorf("Message() = %q is not a game-over message", g.Message())
	}
}

func TestExitCancelsDeathTimer(t *testing.T) {
	g, host := newTestGame(t, 1)
	stepUntil(t, g, 300, func() bool { return g.state == phaseDying })

	g.Exit()
	if host.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d after Exit", host.PendingTimers())
	}

	host.Advance(time.Second)
	st := g.State()
	if st.GameOver || !st.Exited {
		t.Errorf("State() = %+v, expected exited without results", st)
	}

	// Exit twice is harmless.
	g.Exit()
}

func TestResetDuringDeathDelay(t *testing.T) {
	g, host := newTestGame(t, 1)
	stepUntil(t, g, 300, func() bool { return g.state == phaseDying })

	g.ResetWith(testRuntime(1), host, config.DefaultRunnerConfig())
	host.Advance(time.Second)

	if g.state != phasePlaying || g.Message() != "" {
		t.Errorf("stale death callback resurrected: state=%v message=%q", g.state, g.Message())
	}
}

func TestBestScoreSavedOncePerGameOver(t *testing.T) {
	g, host := newTestGame(t, 3)
	jump := core.InputOf(core.ActionJump)

	for i := 0; i < 130; i++ {
		g.Step(1, jump)
	}
	stepUntil(t, g, 300, func() bool { return g.state == phaseDying })
	host.Advance(600 * time.Millisecond)

	st := g.State()
	if !st.GameOver || st.Score < 2 {
		t.Fatalf("State() = %+v", st)
	}
	if host.BestScore(BestKey) != st.Score || st.Best != st.Score || !g.newBest {
		t.Errorf("best = %d (host %d), expected %d", st.Best, host.BestScore(BestKey), st.Score)
	}

	// Restart keeps the stored best and starts over.
	g.Step(1, core.InputOf(core.ActionRestart))
	st = g.State()
	if st.GameOver || st.Score != 0 || st.Best != host.BestScore(BestKey) {
		t.Errorf("after restart State() = %+v", st)
	}
}

func TestObstacleKindsUnlockByGeneration(t *testing.T) {
	g, _ := newTestGame(t, 1)

	tests := []struct {
		generation int
		expected   []ObstacleKind
	}{
		{0, []ObstacleKind{Misfolded}},
		{4, []ObstacleKind{Misfolded}},
		{5, []ObstacleKind{Misfolded, StopCodon}},
		{15, []ObstacleKind{Misfolded, StopCodon, Degradation}},
	}
	for _, tc := range tests {
		g.generation = tc.generation
		if got := g.availableKinds(); !slices.Equal(got, tc.expected) {
			t.Errorf("generation %d: kinds = %v, expected %v", tc.generation, got, tc.expected)
		}
	}
}

func TestObstacleCollisionAndDrift(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.speed = 0

	g.obstacles = []Obstacle{{Kind: Degradation, Pos: core.Vec2{X: 500, Y: 100}, Size: 20}}
	if g.updateObstacles(1) {
		t.Fatal("distant obstacle should not hit")
	}
	if math.Abs(g.obstacles[0].Pos.Y-100.3) > 1e-9 {
		t.Errorf("degradation y = %v, expected drift to 100.3", g.obstacles[0].Pos.Y)
	}

	// Hit radius is size*0.4: 16 + 8 = 24.
	g.obstacles = []Obstacle{{Kind: Misfolded, Pos: g.player.Pos.Add(core.Vec2{X: 23.9}), Size: 20}}
	if !g.updateObstacles(1) {
		t.Error("overlapping obstacle should hit")
	}
	g.obstacles = []Obstacle{{Kind: Misfolded, Pos: g.player.Pos.Add(core.Vec2{X: 24}), Size: 20}}
	if g.updateObstacles(1) {
		t.Error("touching at exactly the summed radii is not a hit")
	}

	g.obstacles = []Obstacle{{Pos: core.Vec2{X: -80}, Size: 20}}
	g.updateObstacles(1)
	if len(g.obstacles) != 0 {
		t.Error("obstacle past the left margin should be removed")
	}
}

func TestCollectiblePickup(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.speed = 0
	g.collectibles = []Collectible{{Pos: g.player.Pos, Great: true}}

	g.updateCollectibles(0)
	if len(g.collectibles) != 0 {
		t.Fatal("collectible should be consumed")
	}
	if g.Fitness() != 100 {
		t.Errorf("Fitness() = %v, expected 100", g.Fitness())
	}
	if len(g.effects.Texts) != 1 || g.effects.Texts[0].Text != "+100" {
		t.Errorf("floating texts = %+v", g.effects.Texts)
	}
	if len(g.effects.Particles) != pickupParticles {
		t.Errorf("particles = %d, expected %d", len(g.effects.Particles), pickupParticles)
	}
}

func TestTouchParticleCap(t *testing.T) {
	host := core.NewHeadlessHost()
	g := New()
	rt := testRuntime(1)
	rt.Touch = true
	g.ResetWith(rt, host, config.DefaultRunnerConfig())

	for i := 0; i < 20; i++ {
		g.jump()
	}
	if n := len(g.effects.Particles); n != 40 {
		t.Errorf("particles = %d, expected touch cap 40", n)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(1, core.NewInputFrame())
	before := g.Snapshot()

	g.Step(1, core.InputOf(core.ActionPause))
	for i := 0; i < 10; i++ {
		g.Step(1, core.NewInputFrame())
	}
	if !g.State().Paused || !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("paused game should not advance")
	}

	g.Step(1, core.InputOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRenderShowsHUDAndResults(t *testing.T) {
	g, host := newTestGame(t, 1)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.Row(0), "GEN 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}

	stepUntil(t, g, 300, func() bool { return g.state == phaseDying })
	host.Advance(time.Second)
	scr.Clear()
	g.Render(scr)
	if !strings.Contains(scr.String(), "SELECTED AGAINST") {
		t.Errorf("results panel missing:\n%s", scr.String())
	}
}

func TestLoopDrivesGame(t *testing.T) {
	g, host := newTestGame(t, 9)
	loop := core.NewLoop(g, host)
	scr := core.NewScreen(60, 20)

	for i := 0; i < 5; i++ {
		host.Advance(core.NominalFrame)
		loop.Tick(scr)
	}
	if g.Snapshot().Tick != 5 {
		t.Errorf("Tick = %d after 5 loop ticks", g.Snapshot().Tick)
	}
}
