package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target frames per second of the host loop (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Touch    bool  // Touch device: lower particle cap
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// HUDValue is one labelled readout (score, lives, round...).
type HUDValue struct {
	Label string
	Value string
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int        // Current score
	Best     int        // Best score known for this game
	GameOver bool       // Whether the results screen is showing
	Paused   bool       // Whether the game is paused
	Exited   bool       // Whether the player left the game
	HUD      []HUDValue // Readouts in display order
}

// Readout returns the HUD value with the given label.
func (s GameState) Readout(label string) (string, bool) {
	for _, v := range s.HUD {
		if v.Label == label {
			return v.Value, true
		}
	}
	return "", false
}

// StepResult is returned by Game.Step() after each simulation step.
type StepResult struct {
	State GameState
}
