// Package registry provides a global registry of terminal front-ends.
// Front-ends register themselves in init() functions, so the CLI can pick
// one by name without importing every backend's details.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Frontend owns the terminal for one play session.
// It sets the terminal up, runs the game until the player quits and restores
// the terminal on every exit path.
type Frontend interface {
	// ID returns a unique identifier used by the --ui flag (e.g., "tcell").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Run plays until the player quits or ctx is done.
	Run(ctx context.Context, opts Options) error
}

// Options carries what every front-end needs to start a session.
type Options struct {
	Config config.Config
	Logger *log.Logger
}

// FrontendInfo contains metadata about a registered front-end.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new front-end instance.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front-end factory to the registry.
// Panics if a front-end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered front-ends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a front-end by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a front-end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
