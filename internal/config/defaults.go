package config

import (
	_ "embed"

	"github.com/vovakirdan/lab-arcade/internal/field"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/peaks.yaml
var defaultPeaksYAML []byte

//go:embed defaults/rnase.yaml
var defaultRnaseYAML []byte

// DefaultRunnerConfig returns the default Fitness Landscape Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: World{Width: 960, Height: 540},
		Physics: RunnerPhysics{
			Gravity:      0.55,
			JumpImpulse:  -11,
			BaseSpeed:    3,
			PlayerRadius: 16,
			PlayerXRatio: 0.18,
			StartYRatio:  0.4,
			JumpGlow:     10,
		},
		Terrain: RunnerTerrain{
			SegmentWidth: 4,
			BaseRatio:    0.7,
			Waves: []Wave{
				{Freq: 0.002, Phase: 0, Amp: 0.15},
				{Freq: 0.007, Phase: 2, Amp: 0.08},
				{Freq: 0.018, Phase: 5, Amp: 0.03},
				{Freq: 0.0008, Phase: 1, Amp: 0.1},
			},
			Rough:        Wave{Freq: 0.012, Phase: 3},
			RoughRate:    0.00002,
			RoughCap:     0.08,
			Lookahead:    400,
			InitialExtra: 200,
		},
		Generation: RunnerGeneration{
			Frames:          60,
			BannerEvery:     10,
			BannerFrames:    120,
			FitnessPerFrame: 0.15,
		},
		Obstacles: RunnerObstacles{
			BaseInterval:     160,
			IntervalPerGen:   3,
			MinInterval:      80,
			StopCodonGen:     5,
			DegradationGen:   15,
			DegradationDrift: 0.3,
			SpawnOffset:      50,
			Clearance:        50,
			MinSize:          22,
			SizeRange:        10,
			HitRatio:         0.4,
		},
		Collectibles: RunnerCollectibles{
			Interval:     300,
			GreatChance:  0.2,
			Bonus:        50,
			GreatBonus:   100,
			PickupRadius: 12,
			HeightOffset: 80,
			HeightRange:  0.35,
			BobSpeed:     0.05,
			BobAmp:       5,
		},
		Effects: Effects{
			ParticleCap:      80,
			TouchParticleCap: 40,
			Gravity:          0.08,
			TextLife:         50,
			TextRise:         -1.5,
		},
		Death: Death{
			DelayMS:     600,
			Shake:       14,
			ShakeFrames: 25,
			ShakeDecay:  0.94,
			Particles:   20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultPeaksConfig returns the default Adaptive Walk configuration.
func DefaultPeaksConfig() PeaksConfig {
	return PeaksConfig{
		World: World{Width: 960, Height: 540},
		Physics: PeaksPhysics{
			Gravity:       0.5,
			JumpImpulse:   -10.5,
			Accel:         0.6,
			MaxSpeed:      5,
			Friction:      0.85,
			BounceDamping: 0.35,
			RestThreshold: 1.2,
			JumpCooldown:  12,
			PlayerRadius:  12,
			PointsPerTick: 0.1,
		},
		Landscape: PeaksLandscape{
			Spacing:      8,
			BaseRatio:    0.88,
			MinPeaks:     3,
			MaxPeaks:     5,
			PeakMin:      0.22,
			PeakMax:      0.55,
			WidthMin:     40,
			WidthMax:     110,
			EdgeMargin:   0.08,
			RippleAmp:    6,
			RippleFreq:   0.03,
			TopMargin:    60,
			MorphRate:    0.02,
			MorphPerRnd:  0.002,
			MorphRateMax: 0.08,
		},
		Rounds: PeaksRounds{
			FirstDrift:     600,
			Drift:          420,
			DriftShrink:    30,
			DriftFloor:     240,
			Pressure:       900,
			PressureGrowth: 60,
			DriftLevel:     0.97,
			WaterEase:      0.02,
			OscBase:        6,
			OscPerRound:    3,
			OscMax:         40,
			SafetyBuffer:   24,
			SafeRounds:     2,
			ShortestRounds: 4,
			CreepRate:      0.15,
			RoundBonus:     100,
		},
		Collectibles: PeaksCollectibles{
			Interval:     240,
			Bonus:        25,
			PickupRadius: 12,
			Hover:        40,
			BobSpeed:     0.05,
			BobAmp:       5,
			Max:          4,
		},
		Effects: Effects{
			ParticleCap:      80,
			TouchParticleCap: 40,
			Gravity:          0.08,
			TextLife:         50,
			TextRise:         -1.5,
		},
		Death: Death{
			DelayMS:     600,
			Shake:       10,
			ShakeFrames: 20,
			ShakeDecay:  0.94,
			Particles:   20,
		},
	}
}

// DefaultRnaseConfig returns the default RNA Destroyer configuration.
func DefaultRnaseConfig() RnaseConfig {
	return RnaseConfig{
		Maze: RnaseMaze{
			TileSize: 16,
			Layout:   append([]string(nil), field.DefaultMaze...),
			Door:     TilePos{Col: 10, Row: 9},
			Exit:     TilePos{Col: 10, Row: 8},
			Home:     TilePos{Col: 10, Row: 10},
		},
		Player: RnasePlayer{
			Start:         TilePos{Col: 10, Row: 16},
			Lives:         3,
			SpeedDiv:      8,
			SpeedPerLevel: 0.3,
		},
		Ghosts: RnaseGhosts{
			Names: []string{"RI", "SUPERase", "RNasin", "DEPC"},
			Starts: []TilePos{
				{Col: 10, Row: 8},
				{Col: 9, Row: 10},
				{Col: 10, Row: 10},
				{Col: 11, Row: 10},
			},
			ReleaseStep:   180,
			SpeedDiv:      10,
			SpeedPerLevel: 0.2,
			EatenSpeed:    3,
			FrightSpeed:   0.5,
			Rerelease:     60,
			Schedule:      []float64{420, 1200, 420, 1200, 300, 1200, 300, -1},
			AmbushTiles:   4,
			FlankTiles:    2,
			ShyRadius:     8,
			HitRatio:      0.7,
		},
		Scoring: RnaseScoring{
			Dot:         10,
			Power:       50,
			GhostBase:   200,
			FrightBase:  480,
			FrightStep:  40,
			FrightFloor: 180,
		},
		Timing: RnaseTiming{
			Ready:         120,
			Death:         90,
			LevelComplete: 120,
		},
		Effects: Effects{
			ParticleCap:      80,
			TouchParticleCap: 40,
			Gravity:          0.08,
			TextLife:         50,
			TextRise:         -1,
		},
	}
}
