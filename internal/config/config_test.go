package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate keeps the user and working-directory config locations out of the
// search order.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	runner, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if !reflect.DeepEqual(runner, DefaultRunnerConfig()) {
		t.Errorf("embedded runner.yaml differs from DefaultRunnerConfig:\n%+v\n%+v", runner, DefaultRunnerConfig())
	}

	peaks, err := LoadPeaks("")
	if err != nil {
		t.Fatalf("LoadPeaks: %v", err)
	}
	if !reflect.DeepEqual(peaks, DefaultPeaksConfig()) {
		t.Errorf("embedded peaks.yaml differs from DefaultPeaksConfig")
	}

	rnase, err := LoadRnase("")
	if err != nil {
		t.Fatalf("LoadRnase: %v", err)
	}
	if !reflect.DeepEqual(rnase, DefaultRnaseConfig()) {
		t.Errorf("embedded rnase.yaml differs from DefaultRnaseConfig")
	}
}

func TestLoadCustomPathOverridesOnlyNamedKeys(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != -11 || cfg.Obstacles.MinInterval != 80 {
		t.Errorf("unnamed keys lost their defaults: %+v", cfg.Physics)
	}
}

func TestLoadLocalConfigsDirectory(t *testing.T) {
	isolate(t)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "rnase.yaml"), []byte("player:\n  lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRnase("")
	if err != nil {
		t.Fatalf("LoadRnase: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7 from ./configs", cfg.Player.Lives)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadPeaks(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPeaks(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalidCfg := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalidCfg, []byte("landscape:\n  spacing: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPeaks(invalidCfg); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadPeaks() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func() error
	}{
		{"runner positive jump", func() error {
			c := DefaultRunnerConfig()
			c.Physics.JumpImpulse = 5
			return c.Validate()
		}},
		{"runner great chance above one", func() error {
			c := DefaultRunnerConfig()
			c.Collectibles.GreatChance = 1.5
			return c.Validate()
		}},
		{"peaks empty peak range", func() error {
			c := DefaultPeaksConfig()
			c.Landscape.MaxPeaks = 1
			return c.Validate()
		}},
		{"peaks negative buffer", func() error {
			c := DefaultPeaksConfig()
			c.Rounds.SafetyBuffer = -1
			return c.Validate()
		}},
		{"rnase player inside wall", func() error {
			c := DefaultRnaseConfig()
			c.Player.Start = TilePos{Col: 0, Row: 0}
			return c.Validate()
		}},
		{"rnase unnamed ghost", func() error {
			c := DefaultRnaseConfig()
			c.Ghosts.Names = c.Ghosts.Names[:2]
			return c.Validate()
		}},
		{"rnase empty schedule", func() error {
			c := DefaultRnaseConfig()
			c.Ghosts.Schedule = nil
			return c.Validate()
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.mutate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	c := DefaultRnaseConfig()
	c.Maze.Layout = []string{"###", "#."}
	if err := c.Validate(); err == nil {
		t.Error("ragged layout should fail validation")
	}

	for name, err := range map[string]error{
		"runner": DefaultRunnerConfig().Validate(),
		"peaks":  DefaultPeaksConfig().Validate(),
		"rnase":  DefaultRnaseConfig().Validate(),
	} {
		if err != nil {
			t.Errorf("default %s config invalid: %v", name, err)
		}
	}
}

func TestDifficultyManagerSpeed(t *testing.T) {
	dm := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	tests := []struct {
		generations int
		expected    float64
	}{
		{0, 3},
		{10, 3.6},
		{25, 4.5},
		{50, 6},
		{500, 6},
	}
	for _, tc := range tests {
		got := dm.Speed(3, tc.generations, 0)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Speed at generation %d = %v, expected %v", tc.generations, got, tc.expected)
		}
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() || dm.Speed(3, 50, 0) != 3 {
		t.Error("disabled manager should stay at the initial level")
	}

	dm.SetInitialLevel(2)
	if dm.Level(0, 0) != 1 {
		t.Errorf("Level() = %v, expected clamp to 1", dm.Level(0, 0))
	}
}

func TestPresets(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard || ParsePreset("nightmare") != "" {
		t.Error("ParsePreset wrong")
	}

	r := DefaultRunnerConfig()
	ApplyRunnerPreset(&r, DifficultyFixed)
	if r.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	ApplyRunnerPreset(&r, DifficultyNormal)
	if !r.Difficulty.Enabled || r.Difficulty.InitialLevel != 0.3 {
		t.Errorf("normal preset: %+v", r.Difficulty)
	}

	p := DefaultPeaksConfig()
	ApplyPeaksPreset(&p, DifficultyEasy)
	if p.Rounds.SafetyBuffer <= DefaultPeaksConfig().Rounds.SafetyBuffer {
		t.Error("easy preset should widen the safety buffer")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("easy peaks preset invalid: %v", err)
	}

	m := DefaultRnaseConfig()
	ApplyRnasePreset(&m, DifficultyHard)
	if m.Player.Lives != 2 {
		t.Errorf("Lives = %d after hard preset", m.Player.Lives)
	}
	if m.Scoring.FrightFrames(1) != 360 {
		t.Errorf("FrightFrames(1) = %v after hard preset", m.Scoring.FrightFrames(1))
	}
}

func TestFrightFrames(t *testing.T) {
	s := DefaultRnaseConfig().Scoring
	tests := []struct {
		level    int
		expected float64
	}{
		{1, 480},
		{2, 400},
		{5, 280},
		{8, 180},
		{20, 180},
	}
	for _, tc := range tests {
		if got := s.FrightFrames(tc.level); got != tc.expected {
			t.Errorf("FrightFrames(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}
