// Package registry keeps the table of playable boards. Game packages
// register their factories in init() so the CLI, the menu and the SSH
// server can list and create them by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Game is the contract between a game and the terminal platform.
// Games hold pure logic; the platform handles key mapping, timing and
// turning the screen buffer into terminal output.
type Game interface {
	// ID returns the registry key (e.g. "small").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a new board. Called before the first Step and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies the input collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Describer is implemented by games that carry a one-line summary for
// listings.
type Describer interface {
	Description() string
}

// GameInfo is the listing entry for a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	order       int
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory under id. Games are listed in registration
// order. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title(), order: len(factories)}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	factories[id] = f
	infos[id] = info
}

// List returns every registered game in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].order < result[j].order
	})
	return result
}

// Create instantiates a game by id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
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
