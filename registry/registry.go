// Package registry holds a query-only table of block types, populated by
// the host platform and looked up, never mutated, by tree operations.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// BlockType describes one registered block type.
type BlockType struct {
	Title    string
	Category string
	// Dynamic block types are rendered server-side by the platform.
	Dynamic  bool
	Supports map[string]any
}

// Registry maps "vendor/type" names to their block types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]BlockType
}

func New() *Registry {
	return &Registry{
		types: make(map[string]BlockType),
	}
}

// Register adds a block type. Names must be non-empty and unique.
func (r *Registry) Register(name string, bt BlockType) error {
	if name == "" {
		return fmt.Errorf("block type must have a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		return fmt.Errorf("block type %q already registered", name)
	}
	r.types[name] = bt
	return nil
}

// IsRegistered reports whether name is a known block type.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// Get looks up one block type by name.
func (r *Registry) Get(name string) (BlockType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bt, ok := r.types[name]
	return bt, ok
}

// All returns a copy of the whole table.
func (r *Registry) All() map[string]BlockType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]BlockType, len(r.types))
	for k, v := range r.types {
		out[k] = v
	}
	return out
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for k := range r.types {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
