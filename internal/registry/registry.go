// Package registry keeps the game factories known to the front ends. Games
// register themselves in init(), so the CLI, the SSH server and the menu
// can list and create them without importing each one by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/match3/internal/core"
)

// Game is what a front end drives: one fixed tick at a time, input
// abstracted to core actions, output drawn into a core.Screen.
type Game interface {
	// ID is the stable identifier used on the command line and in scores.
	ID() string
	// Title is shown in menus.
	Title() string
	// Reset starts a new game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)
	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws the game into a pre-cleared screen.
	Render(dst *core.Screen)
	// State returns the current score and flags.
	State() core.GameState
}

// Describer is implemented by games that have a one-line description.
type Describer interface {
	Description() string
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	factories[id] = f
	infos[id] = info
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
