// Package headless runs games without a terminal, on the manual clock of a
// core.HeadlessHost. The simulate command and tests use it.
package headless

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lab-arcade/internal/core"
	"github.com/vovakirdan/lab-arcade/internal/games/peaks"
	"github.com/vovakirdan/lab-arcade/internal/games/rnase"
	"github.com/vovakirdan/lab-arcade/internal/games/runner"
	"github.com/vovakirdan/lab-arcade/internal/session"
)

// Script is the input fed to a headless run.
type Script struct {
	Frames     int           // frames to run
	Hold       []core.Action // actions held for the whole run
	Press      core.Action   // action pressed every PressEvery frames
	PressEvery int
	StopOnOver bool // stop at the first game over
	Render     bool // keep the final screen in the report
}

// Report is the outcome of a headless run.
type Report struct {
	Game     string            `yaml:"game"`
	Seed     int64             `yaml:"seed"`
	Frames   int               `yaml:"frames"`
	Score    int               `yaml:"score"`
	Best     int               `yaml:"best"`
	GameOver bool              `yaml:"game_over"`
	HUD      map[string]string `yaml:"hud"`
	Snapshot any               `yaml:"snapshot,omitempty"`
	Screen   string            `yaml:"screen,omitempty"`
}

// Run plays gameID for the scripted number of frames, one nominal frame of
// host time per tick.
func Run(gameID string, cfg core.RuntimeConfig, script Script, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	host := core.NewHeadlessHost()
	sessions := session.NewManager(host, cfg, nil, logger)
	s, err := sessions.Start(gameID)
	if err != nil {
		return Report{}, fmt.Errorf("headless: %w", err)
	}
	defer sessions.End()

	for _, a := range script.Hold {
		host.Hold(a)
	}

	var screen *core.Screen
	if script.Render {
		screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	}

	var res core.StepResult
	frames := 0
	for frames < script.Frames {
		if script.PressEvery > 0 && frames%script.PressEvery == 0 {
			host.Press(script.Press)
		}
		if frames > 0 {
			host.Advance(core.NominalFrame)
		}
		var ok bool
		res, ok = sessions.Tick(screen)
		frames++
		if !ok || (script.StopOnOver && res.State.GameOver) {
			break
		}
	}

	rep := Report{
		Game:     gameID,
		Seed:     cfg.Seed,
		Frames:   frames,
		Score:    res.State.Score,
		Best:     res.State.Best,
		GameOver: res.State.GameOver,
		HUD:      make(map[string]string, len(res.State.HUD)),
		Snapshot: snapshotOf(s.Game),
	}
	for _, v := range res.State.HUD {
		rep.HUD[v.Label] = v.Value
	}
	if screen != nil {
		rep.Screen = screen.String()
	}
	return rep, nil
}

// snapshotOf returns the game's own snapshot, when it has one.
func snapshotOf(g any) any {
	switch g := g.(type) {
	case *runner.Game:
		return g.Snapshot()
	case *peaks.Game:
		return g.Snapshot()
	case *rnase.Game:
		return g.Snapshot()
	}
	return nil
}

// WriteYAML encodes a report.
func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("headless: encode report: %w", err)
	}
	return enc.Close()
}
