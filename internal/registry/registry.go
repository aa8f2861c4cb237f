// Package registry provides a global registry for platform backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-dodge/internal/assets"
	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/game"
)

// Session is everything a backend needs to run one game.
type Session struct {
	Game    *game.Game
	Runtime core.RuntimeConfig // Screen size hint, tick rate and seed
	Assets  *assets.Bundle
	Input   config.InputConfig
	Logger  *log.Logger
}

// Backend owns the window or terminal: it polls input, steps the game once
// per frame and presents what the game draws.
type Backend interface {
	// ID returns a unique identifier for this backend (e.g., "tui", "term").
	// Used for the --backend flag.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays the session until the player quits or ctx is cancelled.
	// The game has already been reset. Run returns after the final frame.
	Run(ctx context.Context, s Session) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a backend factory under id. Backends call it from init().
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns the registered backends sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, BackendInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b BackendInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// IDs returns the registered backend IDs, sorted.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates the backend registered under id. The error for an
// unknown id names the backends that are available.
func Create(id string) (Backend, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	return e.factory(), nil
}

// Exists reports whether a backend is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
