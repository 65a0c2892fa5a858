// Package commands implements the client's console command evaluator: a
// cvar registry plus the small command set the developer console dispatches
// into.
package commands

import (
	"sort"
	"sync"
)

// Registry stores configuration variables. Reads are safe from any
// goroutine; watches fire on the goroutine that performed the Set.
type Registry struct {
	mu      sync.RWMutex
	vals    map[string]string
	watches map[string][]func(value string)
}

// NewRegistry returns a registry seeded with the given defaults.
func NewRegistry(defaults map[string]string) *Registry {
	vals := make(map[string]string, len(defaults))
	for k, v := range defaults {
		vals[k] = v
	}
	return &Registry{
		vals:    vals,
		watches: make(map[string][]func(string)),
	}
}

// Get retrieves a cvar value.
func (r *Registry) Get(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vals[name]
	return v, ok
}

// Set stores a cvar value and notifies watchers.
func (r *Registry) Set(name, value string) {
	r.mu.Lock()
	r.vals[name] = value
	watches := r.watches[name]
	r.mu.Unlock()

	for _, fn := range watches {
		fn(value)
	}
}

// Watch registers fn to run whenever name is Set. The current value is not
// delivered retroactively.
func (r *Registry) Watch(name string, fn func(value string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watches[name] = append(r.watches[name], fn)
}

// Names returns all cvar names in alphabetical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.vals))
	for name := range r.vals {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}
