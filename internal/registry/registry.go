// Package registry binds game IDs to their factories. The game package
// registers itself from init(); the CLI and the SSH server look it up by ID,
// so neither imports the simulation directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/ticking/internal/core"
)

// Game is what the platform drives. Implementations hold no UI state; the
// platform owns input mapping, timing and terminal output.
type Game interface {
	// ID is the stable key used on the command line and in score storage.
	ID() string
	Title() string

	// Reset builds a fresh session. Called on start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by dt seconds with this tick's actions.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory creates a game instance. Each session gets its own.
type Factory func() Game

// Entry is a registered game.
type Entry struct {
	ID      string
	Title   string
	Summary string // One line shown by "ticking list"
	New     Factory
}

// ErrUnknownGame is returned for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	mu      sync.RWMutex
	entries = map[string]Entry{}
)

// Register adds e. It panics on an empty ID, a nil factory or a duplicate
// ID; all three are wiring mistakes caught at startup.
func Register(e Entry) {
	if e.ID == "" || e.New == nil {
		panic(fmt.Sprintf("registry: incomplete entry %+v", e))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[e.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", e.ID))
	}
	entries[e.ID] = e
}

// Lookup returns the entry for id.
func Lookup(id string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Entries returns every registered game sorted by ID.
func Entries() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	list := make([]Entry, 0, len(entries))
	for _, e := range entries {
		list = append(list, e)
	}
	slices.SortFunc(list, func(a, b Entry) int { return cmp.Compare(a.ID, b.ID) })
	return list
}

// Create instantiates the game registered as id. A factory whose game
// reports a different ID is rejected so scores never land under the wrong key.
func Create(id string) (Game, error) {
	e, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	g := e.New()
	if g.ID() != id {
		return nil, fmt.Errorf("registry: game registered as %q reports ID %q", id, g.ID())
	}
	return g, nil
}
