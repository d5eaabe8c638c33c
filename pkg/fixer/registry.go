package fixer

import (
	"cmp"
	"slices"
	"sync"
)

// Factory creates a fresh, unconfigured fixer.
type Factory func() Fixer

// Registry holds all registered fixers by name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	aliases   map[string]string // alias -> canonical name
}

// NewRegistry creates an empty fixer registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
	}
}

// Register adds a fixer factory under the name of the fixer it builds.
// If a fixer with the same name already exists, it is replaced.
func (r *Registry) Register(factory Factory) {
	name := factory().Name()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// RegisterAlias maps an old fixer name to its current name.
func (r *Registry) RegisterAlias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = name
}

// Resolve returns the canonical name for a fixer name or alias.
func (r *Registry) Resolve(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.factories[key]; ok {
		return key, true
	}
	if name, ok := r.aliases[key]; ok {
		if _, ok := r.factories[name]; ok {
			return name, true
		}
	}
	return "", false
}

// New builds a fresh instance of the named fixer (aliases accepted).
func (r *Registry) New(key string) (Fixer, bool) {
	name, ok := r.Resolve(key)
	if !ok {
		return nil, false
	}
	r.mu.RLock()
	factory := r.factories[name]
	r.mu.RUnlock()
	return factory(), true
}

// Fixers returns a fresh instance of every registered fixer, sorted by name.
func (r *Registry) Fixers() []Fixer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Fixer, 0, len(r.factories))
	for _, factory := range r.factories {
		result = append(result, factory())
	}

	slices.SortFunc(result, func(a, b Fixer) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	return result
}

// Names returns all registered fixer names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.factories))
	for name := range r.factories {
		result = append(result, name)
	}

	slices.Sort(result)
	return result
}

// AliasesOf returns the sorted aliases that resolve to name.
func (r *Registry) AliasesOf(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []string
	for alias, target := range r.aliases {
		if target == name {
			result = append(result, alias)
		}
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in fixers.
// Fixers register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for fixer registration
var DefaultRegistry = NewRegistry()
