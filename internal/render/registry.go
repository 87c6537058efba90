package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrRendererNotFound is returned when no renderer is registered under a name
	ErrRendererNotFound = errors.New("renderer not found")

	// ErrRendererExists is returned when registering a name twice
	ErrRendererExists = errors.New("renderer already registered")
)

// Built-in renderer names
const (
	NamePlain = "plain"
	NameJSON  = "json"
	NameRepr  = "repr"
)

// Factory builds a Renderer for the given formatting options.
// Renderers that have no options ignore them.
type Factory func(opts Options) Renderer

// Registry maps renderer names to factories
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a registry holding the built-in renderers
func NewRegistry() *Registry {
	return &Registry{
		factories: map[string]Factory{
			NamePlain: func(Options) Renderer { return Plain() },
			NameJSON:  JSON,
			NameRepr:  func(Options) Renderer { return Repr() },
		},
	}
}

// Register adds a factory under name
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("renderer name is required")
	}
	if factory == nil {
		return fmt.Errorf("renderer %q: factory is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrRendererExists, name)
	}
	r.factories[name] = factory
	return nil
}

// Lookup returns the renderer registered under name, configured with opts
func (r *Registry) Lookup(name string, opts Options) (Renderer, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRendererNotFound, name)
	}
	return factory(opts), nil
}

// Names returns the registered renderer names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
