// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// World is the fixed simulation rectangle a game runs in. Renderers scale it
// onto the terminal.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Effects configures particle bursts and floating score labels.
type Effects struct {
	ParticleCap      int     `yaml:"particle_cap"`
	TouchParticleCap int     `yaml:"touch_particle_cap"` // lower cap on touch devices
	Gravity          float64 `yaml:"gravity"`
	TextLife         float64 `yaml:"text_life"`
	TextRise         float64 `yaml:"text_rise"`
}

// Cap returns the particle cap for the device class.
func (e Effects) Cap(touch bool) int {
	if touch {
		return e.TouchParticleCap
	}
	return e.ParticleCap
}

// Death configures the pause between a fatal hit and the results screen.
type Death struct {
	DelayMS     int     `yaml:"delay_ms"`
	Shake       float64 `yaml:"shake"`
	ShakeFrames float64 `yaml:"shake_frames"`
	ShakeDecay  float64 `yaml:"shake_decay"`
	Particles   int     `yaml:"particles"`
}

// Wave is one sine layer of the runner terrain. Amp is a fraction of the
// world height.
type Wave struct {
	Freq  float64 `yaml:"freq"`
	Phase float64 `yaml:"phase"`
	Amp   float64 `yaml:"amp"`
}

// RunnerConfig contains all configuration for the Fitness Landscape Runner.
type RunnerConfig struct {
	World        World              `yaml:"world"`
	Physics      RunnerPhysics      `yaml:"physics"`
	Terrain      RunnerTerrain      `yaml:"terrain"`
	Generation   RunnerGeneration   `yaml:"generation"`
	Obstacles    RunnerObstacles    `yaml:"obstacles"`
	Collectibles RunnerCollectibles `yaml:"collectibles"`
	Effects      Effects            `yaml:"effects"`
	Death        Death              `yaml:"death"`
	Difficulty   DifficultyConfig   `yaml:"difficulty"`
}

// RunnerPhysics defines the player body and motion.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	BaseSpeed    float64 `yaml:"base_speed"`
	PlayerRadius float64 `yaml:"player_radius"`
	PlayerXRatio float64 `yaml:"player_x_ratio"`
	StartYRatio  float64 `yaml:"start_y_ratio"`
	JumpGlow     float64 `yaml:"jump_glow"`
}

// RunnerTerrain defines the scrolling ground.
type RunnerTerrain struct {
	SegmentWidth float64 `yaml:"segment_width"`
	BaseRatio    float64 `yaml:"base_ratio"`
	Waves        []Wave  `yaml:"waves"`
	Rough        Wave    `yaml:"rough"`
	RoughRate    float64 `yaml:"rough_rate"`
	RoughCap     float64 `yaml:"rough_cap"`
	Lookahead    float64 `yaml:"lookahead"`
	InitialExtra int     `yaml:"initial_extra"`
}

// RunnerGeneration defines the generation clock and its rewards.
type RunnerGeneration struct {
	Frames          float64 `yaml:"frames"`
	BannerEvery     int     `yaml:"banner_every"`
	BannerFrames    float64 `yaml:"banner_frames"`
	FitnessPerFrame float64 `yaml:"fitness_per_frame"`
}

// RunnerObstacles defines the obstacle spawner.
type RunnerObstacles struct {
	BaseInterval     float64 `yaml:"base_interval"`
	IntervalPerGen   float64 `yaml:"interval_per_gen"`
	MinInterval      float64 `yaml:"min_interval"`
	StopCodonGen     int     `yaml:"stop_codon_gen"`
	DegradationGen   int     `yaml:"degradation_gen"`
	DegradationDrift float64 `yaml:"degradation_drift"`
	SpawnOffset      float64 `yaml:"spawn_offset"`
	Clearance        float64 `yaml:"clearance"`
	MinSize          float64 `yaml:"min_size"`
	SizeRange        float64 `yaml:"size_range"`
	HitRatio         float64 `yaml:"hit_ratio"`
}

// RunnerCollectibles defines the beneficial mutation spawner.
type RunnerCollectibles struct {
	Interval     float64 `yaml:"interval"`
	GreatChance  float64 `yaml:"great_chance"`
	Bonus        int     `yaml:"bonus"`
	GreatBonus   int     `yaml:"great_bonus"`
	PickupRadius float64 `yaml:"pickup_radius"`
	HeightOffset float64 `yaml:"height_offset"`
	HeightRange  float64 `yaml:"height_range"`
	BobSpeed     float64 `yaml:"bob_speed"`
	BobAmp       float64 `yaml:"bob_amp"`
}

// PeaksConfig contains all configuration for the Adaptive Walk.
type PeaksConfig struct {
	World        World             `yaml:"world"`
	Physics      PeaksPhysics      `yaml:"physics"`
	Landscape    PeaksLandscape    `yaml:"landscape"`
	Rounds       PeaksRounds       `yaml:"rounds"`
	Collectibles PeaksCollectibles `yaml:"collectibles"`
	Effects      Effects           `yaml:"effects"`
	Death        Death             `yaml:"death"`
}

// PeaksPhysics defines the walker body and motion.
type PeaksPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	Accel         float64 `yaml:"accel"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Friction      float64 `yaml:"friction"`
	BounceDamping float64 `yaml:"bounce_damping"`
	RestThreshold float64 `yaml:"rest_threshold"`
	JumpCooldown  float64 `yaml:"jump_cooldown"`
	PlayerRadius  float64 `yaml:"player_radius"`
	PointsPerTick float64 `yaml:"points_per_tick"`
}

// PeaksLandscape defines the Gaussian peak generator.
type PeaksLandscape struct {
	Spacing      float64 `yaml:"spacing"`
	BaseRatio    float64 `yaml:"base_ratio"`
	MinPeaks     int     `yaml:"min_peaks"`
	MaxPeaks     int     `yaml:"max_peaks"`
	PeakMin      float64 `yaml:"peak_min"`
	PeakMax      float64 `yaml:"peak_max"`
	WidthMin     float64 `yaml:"width_min"`
	WidthMax     float64 `yaml:"width_max"`
	EdgeMargin   float64 `yaml:"edge_margin"`
	RippleAmp    float64 `yaml:"ripple_amp"`
	RippleFreq   float64 `yaml:"ripple_freq"`
	TopMargin    float64 `yaml:"top_margin"`
	MorphRate    float64 `yaml:"morph_rate"`
	MorphPerRnd  float64 `yaml:"morph_per_round"`
	MorphRateMax float64 `yaml:"morph_rate_max"`
}

// PeaksRounds defines the drift/pressure cycle and the water antagonist.
type PeaksRounds struct {
	FirstDrift     float64 `yaml:"first_drift"`
	Drift          float64 `yaml:"drift"`
	DriftShrink    float64 `yaml:"drift_shrink"`
	DriftFloor     float64 `yaml:"drift_floor"`
	Pressure       float64 `yaml:"pressure"`
	PressureGrowth float64 `yaml:"pressure_growth"`
	DriftLevel     float64 `yaml:"drift_level"` // water y during drift as a fraction of height
	WaterEase      float64 `yaml:"water_ease"`
	OscBase        float64 `yaml:"osc_base"`
	OscPerRound    float64 `yaml:"osc_per_round"`
	OscMax         float64 `yaml:"osc_max"`
	SafetyBuffer   float64 `yaml:"safety_buffer"`
	SafeRounds     int     `yaml:"safe_rounds"`
	ShortestRounds int     `yaml:"shortest_rounds"`
	CreepRate      float64 `yaml:"creep_rate"`
	RoundBonus     int     `yaml:"round_bonus"`
}

// PeaksCollectibles defines floating pickups above the landscape.
type PeaksCollectibles struct {
	Interval     float64 `yaml:"interval"`
	Bonus        int     `yaml:"bonus"`
	PickupRadius float64 `yaml:"pickup_radius"`
	Hover        float64 `yaml:"hover"`
	BobSpeed     float64 `yaml:"bob_speed"`
	BobAmp       float64 `yaml:"bob_amp"`
	Max          int     `yaml:"max"`
}

// RnaseConfig contains all configuration for RNA Destroyer.
type RnaseConfig struct {
	Maze    RnaseMaze    `yaml:"maze"`
	Player  RnasePlayer  `yaml:"player"`
	Ghosts  RnaseGhosts  `yaml:"ghosts"`
	Scoring RnaseScoring `yaml:"scoring"`
	Timing  RnaseTiming  `yaml:"timing"`
	Effects Effects      `yaml:"effects"`
}

// TilePos is a maze cell address.
type TilePos struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// RnaseMaze defines the layout and the landmark tiles.
type RnaseMaze struct {
	TileSize float64  `yaml:"tile_size"`
	Layout   []string `yaml:"layout"`
	Door     TilePos  `yaml:"door"`
	Exit     TilePos  `yaml:"exit"` // tile just outside the door
	Home     TilePos  `yaml:"home"` // where eaten ghosts return
}

// RnasePlayer defines the player mover.
type RnasePlayer struct {
	Start         TilePos `yaml:"start"`
	Lives         int     `yaml:"lives"`
	SpeedDiv      float64 `yaml:"speed_div"` // base speed is tile_size / speed_div
	SpeedPerLevel float64 `yaml:"speed_per_level"`
}

// RnaseGhosts defines the pursuers.
type RnaseGhosts struct {
	Names         []string  `yaml:"names"`
	Starts        []TilePos `yaml:"starts"`
	ReleaseStep   float64   `yaml:"release_step"`
	SpeedDiv      float64   `yaml:"speed_div"`
	SpeedPerLevel float64   `yaml:"speed_per_level"`
	EatenSpeed    float64   `yaml:"eaten_speed"`
	FrightSpeed   float64   `yaml:"fright_speed"`
	Rerelease     float64   `yaml:"rerelease"`
	Schedule      []float64 `yaml:"schedule"` // scatter/chase durations; negative means forever
	AmbushTiles   int       `yaml:"ambush_tiles"`
	FlankTiles    int       `yaml:"flank_tiles"`
	ShyRadius     int       `yaml:"shy_radius"`
	HitRatio      float64   `yaml:"hit_ratio"`
}

// RnaseScoring defines points.
type RnaseScoring struct {
	Dot         int `yaml:"dot"`
	Power       int `yaml:"power"`
	GhostBase   int `yaml:"ghost_base"`
	FrightBase  int `yaml:"fright_base"`
	FrightStep  int `yaml:"fright_step"`
	FrightFloor int `yaml:"fright_floor"`
}

// FrightFrames returns how long power pellets frighten ghosts on a level.
// The first level uses the base duration; later levels shrink it to a floor.
func (s RnaseScoring) FrightFrames(level int) float64 {
	if level <= 1 {
		return float64(s.FrightBase)
	}
	return float64(max(s.FrightFloor, s.FrightBase-level*s.FrightStep))
}

// RnaseTiming defines the pauses between play states.
type RnaseTiming struct {
	Ready         float64 `yaml:"ready"`
	Death         float64 `yaml:"death"`
	LevelComplete float64 `yaml:"level_complete"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values mean "use the
// config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
