// Copyright The Shipwright Contributors
//
// SPDX-License-Identifier: Apache-2.0

package enricher

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the enricher factories by name
type Registry struct {
	factories map[string]Factory

	mu sync.RWMutex
}

// NewRegistry creates a Registry with the BuildConfig enrichers
func NewRegistry() *Registry {
	return &Registry{
		factories: map[string]Factory{
			BuildConfigEnricherName:        NewBuildConfigEnricher,
			JenkinsBuildConfigEnricherName: NewJenkinsBuildConfigEnricher,
		},
	}
}

// Register registers an enricher factory under the given name, replacing
// an existing one
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get retrieves an enricher factory by name
func (r *Registry) Get(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// List returns the names of all registered enrichers in alphabetical order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes an enricher factory from this registry
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; !ok {
		return fmt.Errorf("enricher %s not registered", name)
	}

	delete(r.factories, name)
	return nil
}
