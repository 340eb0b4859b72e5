package backend

import (
	"fmt"
	"sort"
	"sync"
)

// RendererFactory creates a new Renderer instance.
type RendererFactory func() Renderer

// Registry maps renderer names to factories. An application owns one
// Registry, fills it at startup and hands it to whatever creates device
// contexts; there is no process-wide default instance.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]RendererFactory
	priority  []string
}

// NewRegistry creates an empty registry. Default picks renderers in the
// given priority order first, then any other registered renderer in name
// order.
func NewRegistry(priority ...string) *Registry {
	return &Registry{
		factories: make(map[string]RendererFactory),
		priority:  priority,
	}
}

// Register adds a factory under name. It panics if factory is nil or the
// name is already taken, so duplicate registrations surface at startup.
func (r *Registry) Register(name string, factory RendererFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := r.factories[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	r.factories[name] = factory
}

// Unregister removes a renderer. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// IsRegistered reports whether name is registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Available returns the registered names in alphabetical order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get creates the renderer registered under name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return factory(), nil
}

// Default returns the best available renderer, or ErrBackendNotAvailable
// when the registry is empty.
func (r *Registry) Default() (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.priority {
		if factory, ok := r.factories[name]; ok {
			if rd := factory(); rd != nil {
				return rd, nil
			}
		}
	}

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if rd := r.factories[name](); rd != nil {
			return rd, nil
		}
	}
	return nil, ErrBackendNotAvailable
}

// NewContext creates the named renderer and binds a context to t.
func (r *Registry) NewContext(name string, t Target) (Context, error) {
	rd, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	ctx, err := rd.NewContext(t)
	if err != nil {
		return nil, fmt.Errorf("backend: %s: %w", name, err)
	}
	return ctx, nil
}
