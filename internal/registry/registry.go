// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner", "rnase").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// UnlockCode returns the letters that open this game from the menu.
	UnlockCode() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The host supplies the clock, one-shot timers and best scores.
	Reset(cfg core.RuntimeConfig, host core.Host)

	// Step advances the simulation by dt nominal frames (1.0 at 60 fps,
	// never above core.MaxFrameSteps).
	Step(dt float64, in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState

	// Exit tears the session down. Safe to call at any time, including
	// while a delayed callback is pending; such callbacks become no-ops.
	Exit()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID         string
	Title      string
	UnlockCode string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID or unlock code is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get metadata by creating a temporary instance
	g := f()
	code := strings.ToUpper(g.UnlockCode())
	for _, info := range infos {
		if code != "" && info.UnlockCode == code {
			panic(fmt.Sprintf("registry: unlock code %q already used by %q", code, info.ID))
		}
	}

	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), UnlockCode: code}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Secrets maps every unlock code to its game ID, ready for
// core.NewSecretDetector.
func Secrets() map[string]string {
	mu.RLock()
	defer mu.RUnlock()

	out := make(map[string]string, len(infos))
	for id, info := range infos {
		if info.UnlockCode != "" {
			out[info.UnlockCode] = id
		}
	}
	return out
}
