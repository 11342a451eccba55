package peaks

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/lab-arcade/internal/config"
	"github.com/vovakirdan/lab-arcade/internal/core"
)

func newTestGame(t *testing.T, seed int64) (*Game, *core.HeadlessHost) {
	t.Helper()
	host := core.NewHeadlessHost()
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}, host, config.DefaultPeaksConfig())
	return g, host
}

func TestBeginPressureAtRoundOne(t *testing.T) {
	g, _ := newTestGame(t, 1)
	if g.Round() != 1 || g.Phase() != Drift {
		t.Fatalf("fresh game at round %d phase %v", g.Round(), g.Phase())
	}
	if g.phaseTotal != g.cfg.Rounds.FirstDrift {
		t.Errorf("first drift = %v, expected %v", g.phaseTotal, g.cfg.Rounds.FirstDrift)
	}

	g.beginPressure()
	if g.Phase() != Pressure {
		t.Errorf("Phase() = %v, expected pressure", g.Phase())
	}
	if g.phaseTotal != g.cfg.Rounds.Pressure || g.phaseTimer != g.cfg.Rounds.Pressure {
		t.Errorf("pressure duration = %v/%v, expected %v", g.phaseTimer, g.phaseTotal, g.cfg.Rounds.Pressure)
	}
}

func TestPhaseDurations(t *testing.T) {
	g, _ := newTestGame(t, 1)

	tests := []struct {
		round    int
		drift    float64
		pressure float64
	}{
		{1, 600, 900},
		{2, 420, 960},
		{3, 390, 1020},
		{8, 240, 1320},
		{20, 240, 2040},
	}
	for _, tc := range tests {
		if got := g.driftDuration(tc.round); got != tc.drift {
			t.Errorf("driftDuration(%d) = %v, expected %v", tc.round, got, tc.drift)
		}
		if got := g.pressureDuration(tc.round); got != tc.pressure {
			t.Errorf("pressureDuration(%d) = %v, expected %v", tc.round, got, tc.pressure)
		}
	}
}

func TestPressureTargetKeepsGlobalPeakSurvivable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, _ := newTestGame(t, seed)
		for round := 1; round <= 25; round++ {
			g.round = round
			g.beginDrift()
			g.beginPressure()

			floor := globalPeak(g.peaks).Y + g.amplitude() + g.cfg.Rounds.SafetyBuffer
			if g.target < floor-1e-9 {
				t.Fatalf("seed %d round %d: target %v above floor %v", seed, round, g.target, floor)
			}
		}
	}
}

func TestPressureTargetSchedule(t *testing.T) {
	g, _ := newTestGame(t, 4)
	g.beginPressure()
	shortest := shortestPeak(g.peaks)

	g.round = 1
	if got := g.pressureTarget(); got <= shortest.Y {
		t.Errorf("round 1 target %v reaches the shortest summit %v", got, shortest.Y)
	}
	g.round = 3
	if got, want := g.pressureTarget(), max(shortest.Y, g.pressureFloor()); got != want {
		t.Errorf("round 3 target = %v, expected %v", got, want)
	}
}

func TestWaterStaysBelowGlobalPeak(t *testing.T) {
	g, _ := newTestGame(t, 9)
	buffer := g.cfg.Rounds.SafetyBuffer

	for round := 1; round <= 10; round++ {
		g.round = round
		g.beginDrift()
		g.land.Settle()
		g.beginPressure()
		global := globalPeak(g.peaks)

		for i := 0; i < int(g.phaseTotal); i++ {
			g.updateWater(1)
			if g.Water() < global.Y+buffer-1e-9 {
				t.Fatalf("round %d frame %d: water %v over global peak %v", round, i, g.Water(), global.Y)
			}
		}
	}
}

func TestPercentagesClamped(t *testing.T) {
	g, _ := newTestGame(t, 1)

	tests := []struct {
		name     string
		water    float64
		round    int
		pressure float64
		mutation float64
	}{
		{"water far above summit", -1e6, 1000, 1, 1},
		{"water far below field", 1e6, 1, 0, g.cfg.Landscape.MorphRate / g.cfg.Landscape.MorphRateMax},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g.water = tc.water
			g.round = tc.round
			if got := g.SelectionPressure(); got != tc.pressure {
				t.Errorf("SelectionPressure() = %v, expected %v", got, tc.pressure)
			}
			if got := g.MutationRate(); math.Abs(got-tc.mutation) > 1e-9 {
				t.Errorf("MutationRate() = %v, expected %v", got, tc.mutation)
			}
			for _, label := range []string{"Mutation rate", "Selection pressure"} {
				v, ok := g.State().Readout(label)
				if !ok || !strings.HasSuffix(v, "%") {
					t.Errorf("%s readout = %q", label, v)
				}
			}
		})
	}
}

func TestLandingBouncesThenRests(t *testing.T) {
	g, _ := newTestGame(t, 1)
	r := g.walker.Radius

	tests := []struct {
		name     string
		vy       float64
		expected float64
		onGround bool
	}{
		{"hard landing bounces", 8, -8 * 0.35, false},
		{"soft landing rests", 2, 0, true},
		{"rising stays airborne", -3, -3, false},
	}
	for _, tc := range tests {
		g.walker.Pos.Y = 100 - r + 1
		g.walker.Vel.Y = tc.vy
		g.landOn(100)
		if g.walker.Pos.Y != 100-r {
			t.Errorf("%s: y = %v, expected snap to %v", tc.name, g.walker.Pos.Y, 100-r)
		}
		if math.Abs(g.walker.Vel.Y-tc.expected) > 1e-9 || g.walker.OnGround != tc.onGround {
			t.Errorf("%s: vy=%v onGround=%v", tc.name, g.walker.Vel.Y, g.walker.OnGround)
		}
	}
}

func TestWalkerSpeedLimitAndFriction(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.walker.Pos.X = g.cfg.World.Width / 2

	right := core.InputOf(core.ActionRight)
	for i := 0; i < 30; i++ {
		g.updateWalker(1, right)
		if g.walker.Vel.X > g.cfg.Physics.MaxSpeed {
			t.Fatalf("vx = %v exceeds max speed", g.walker.Vel.X)
		}
	}
	for i := 0; i < 60; i++ {
		g.updateWalker(1, core.NewInputFrame())
	}
	if math.Abs(g.walker.Vel.X) > 0.01 {
		t.Errorf("vx = %v after coasting, expected friction to stop the walker", g.walker.Vel.X)
	}
}

func TestJumpCooldown(t *testing.T) {
	g, _ := newTestGame(t, 1)
	x := g.cfg.World.Width / 2
	g.walker.Pos = core.Vec2{X: x, Y: g.land.HeightAt(x) - g.walker.Radius}
	g.walker.Vel = core.Vec2{}
	g.walker.OnGround = true

	jump := core.InputOf(core.ActionJump)
	g.updateWalker(1, jump)
	ph := g.cfg.Physics
	if g.walker.Vel.Y != ph.JumpImpulse+ph.Gravity || g.walker.Cooldown != ph.JumpCooldown {
		t.Fatalf("after jump vy=%v cooldown=%v", g.walker.Vel.Y, g.walker.Cooldown)
	}

	vy := g.walker.Vel.Y
	g.updateWalker(1, jump)
	if g.walker.Vel.Y != vy+ph.Gravity {
		t.Error("airborne walker should not jump again")
	}
}

func TestSurvivingPressureAwardsBonus(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.beginPressure()
	g.phaseTimer = 0.5
	before := g.score

	g.updateRounds(1)
	if g.Round() != 2 || g.Phase() != Drift {
		t.Fatalf("round %d phase %v after pressure expiry", g.Round(), g.Phase())
	}
	if got := g.score - before; got != float64(g.cfg.Rounds.RoundBonus) {
		t.Errorf("bonus = %v, expected %d", got, g.cfg.Rounds.RoundBonus)
	}
	if g.phaseTotal != g.cfg.Rounds.Drift {
		t.Errorf("second drift = %v, expected %v", g.phaseTotal, g.cfg.Rounds.Drift)
	}
}

func TestDriftExpiryStartsPressure(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.phaseTimer = 1
	g.updateRounds(1)
	if g.Phase() != Pressure || g.Round() != 1 {
		t.Errorf("Phase() = %v round %d, expected pressure in round 1", g.Phase(), g.Round())
	}
}

// flood raises the water over the whole field.
func flood(g *Game) {
	g.waterBase = 0
	g.target = 0
}

func TestDrowningEndsRunAfterDelay(t *testing.T) {
	g, host := newTestGame(t, 2)
	flood(g)
	g.Step(1, core.NewInputFrame())
	if g.state != phaseDying || host.PendingTimers() != 1 {
		t.Fatalf("state=%v pending=%d", g.state, host.PendingTimers())
	}

	host.Advance(600 * time.Millisecond)
	st := g.State()
	if !st.GameOver || g.Message() == "" {
		t.Fatalf("State() = %+v", st)
	}
	if host.BestScore(BestKey) != st.Score {
		t.Errorf("stored best = %d, expected %d", host.BestScore(BestKey), st.Score)
	}
}

func TestExitCancelsDeathTimer(t *testing.T) {
	g, host := newTestGame(t, 2)
	flood(g)
	g.Step(1, core.NewInputFrame())

	g.Step(1, core.InputOf(core.ActionExit))
	if host.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d after exit", host.PendingTimers())
	}
	host.Advance(time.Second)
	if st := g.State(); st.GameOver || !st.Exited {
		t.Errorf("State() = %+v", st)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t, 777)
		for i := 0; i < 1500; i++ {
			in := core.NewInputFrame()
			if (i/90)%2 == 0 {
				in.Set(core.ActionRight)
			} else {
				in.Set(core.ActionLeft)
			}
			if i%25 == 0 {
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

func TestRenderHUD(t *testing.T) {
	g, _ := newTestGame(t, 1)
	scr := core.NewScreen(100, 24)
	g.Render(scr)

	hud := scr.Row(0)
	for _, want := range []string{"GEN 1", "DRIFT 10s", "SCORE 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.ContainsRune(scr.String(), WalkerChar) {
		t.Error("walker not drawn")
	}
}
