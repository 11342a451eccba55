package headless

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/games/runner"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestRunnerFallsWithoutInput(t *testing.T) {
	rep, err := Run("runner", testConfig(1), Script{Frames: 600, StopOnOver: true}, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !rep.GameOver {
		t.Fatalf("Expected game over without input, got %+v", rep)
	}
	if rep.Frames >= 600 {
		t.Errorf("Expected the run to stop early, ran %d frames", rep.Frames)
	}
	if _, ok := rep.Snapshot.(runner.Snapshot); !ok {
		t.Errorf("Expected a runner snapshot, got %T", rep.Snapshot)
	}
	if len(rep.HUD) == 0 {
		t.Error("HUD readouts should be reported")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	games := []string{"runner", "peaks", "rnase"}
	for _, id := range games {
		t.Run(id, func(t *testing.T) {
			script := Script{Frames: 400, Press: core.ActionJump, PressEvery: 9, Hold: []core.Action{core.ActionLeft}}
			a, err := Run(id, testConfig(5), script, nil)
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			b, err := Run(id, testConfig(5), script, nil)
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if !reflect.DeepEqual(a, b) {
				t.Errorf("identical runs differ:\n%+v\n%+v", a, b)
			}
		})
	}
}

func TestRunUnknownGame(t *testing.T) {
	if _, err := Run("pong", testConfig(1), Script{Frames: 1}, nil); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestWriteYAML(t *testing.T) {
	rep, err := Run("rnase", testConfig(3), Script{Frames: 10, Render: true}, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if strings.TrimSpace(rep.Screen) == "" {
		t.Error("Render should keep the final screen")
	}

	var buf bytes.Buffer
	if err := WriteYAML(&buf, rep); err != nil {
		t.Fatalf("WriteYAML() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"game: rnase", "seed: 3", "frames: 10", "snapshot:", "state: ready"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}
