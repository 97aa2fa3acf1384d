// Package registry provides a global registry of named scenarios.
// Built-in scenarios register themselves in init(); level files can be added
// at runtime, so the hosts discover scenarios without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridsim/internal/sim"
)

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh initial state for a scenario.
type Factory func() sim.State

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

func init() {
	Register("arena", "Arena", sim.InitState)
	Register("room", "Room", sim.InitRoomState)
}

// Register adds a scenario factory to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// Replace adds or overwrites a scenario. Used for level files, which may
// shadow a built-in scenario of the same ID.
func Replace(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ScenarioInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the initial state of a scenario by its ID.
// Returns an error if the scenario ID is not registered.
func Create(id string) (sim.State, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return sim.State{}, fmt.Errorf("registry: unknown scenario %q", id)
	}

	return f(), nil
}

// Title returns the display title of a scenario, or its ID if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
