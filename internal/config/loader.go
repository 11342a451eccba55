package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded default -> hardcoded default
//
// Files are decoded over the hardcoded defaults, so a partial file only
// overrides the keys it names. A custom path that cannot be read or parsed is
// an error; the other locations are optional and skipped when broken.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", name)}
	if p := userConfigPath(name); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadRunner loads the Fitness Landscape Runner configuration and validates it.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg, err := load("runner.yaml", customPath, defaultRunnerYAML, DefaultRunnerConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadPeaks loads the Adaptive Walk configuration and validates it.
func LoadPeaks(customPath string) (PeaksConfig, error) {
	cfg, err := load("peaks.yaml", customPath, defaultPeaksYAML, DefaultPeaksConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadRnase loads the RNA Destroyer configuration and validates it.
func LoadRnase(customPath string) (RnaseConfig, error) {
	cfg, err := load("rnase.yaml", customPath, defaultRnaseYAML, DefaultRnaseConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseInterval = 200
		cfg.Collectibles.GreatChance = 0.3
	case DifficultyHard:
		cfg.Obstacles.MinInterval = 60
		cfg.Obstacles.StopCodonGen = 2
		cfg.Obstacles.DegradationGen = 8
	}
}

// ApplyPeaksPreset modifies the config based on a difficulty preset.
// Fixed freezes the water oscillation at its first-round amplitude.
func ApplyPeaksPreset(cfg *PeaksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rounds.SafetyBuffer = 48
		cfg.Rounds.SafeRounds = 3
		cfg.Rounds.ShortestRounds = 6
	case DifficultyHard:
		cfg.Rounds.SafetyBuffer = 14
		cfg.Rounds.SafeRounds = 1
		cfg.Rounds.ShortestRounds = 2
		cfg.Rounds.CreepRate = 0.25
	case DifficultyFixed:
		cfg.Rounds.OscBase += cfg.Rounds.OscPerRound
		cfg.Rounds.OscPerRound = 0
		cfg.Rounds.PressureGrowth = 0
		cfg.Rounds.DriftShrink = 0
	}
}

// ApplyRnasePreset modifies the config based on a difficulty preset.
// Fixed keeps every level at first-level speeds.
func ApplyRnasePreset(cfg *RnaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Scoring.FrightBase = 600
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Scoring.FrightBase = 360
		cfg.Ghosts.SpeedPerLevel = 0.3
	case DifficultyFixed:
		cfg.Player.SpeedPerLevel = 0
		cfg.Ghosts.SpeedPerLevel = 0
		cfg.Scoring.FrightStep = 0
	}
}
