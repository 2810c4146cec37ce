// Package provenance hosts the sources that resolve when a change fragment
// was introduced, used by the ordering engine as the chronological tiebreak.
package provenance

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/autorelease/domain"
)

// Registry manages all registered provenance source implementations.
type Registry struct {
	sources map[string]Factory
}

// Factory is a constructor function that creates a ProvenanceSource rooted
// at the given directory.
type Factory func(dir string) (domain.ProvenanceSource, error)

// NewRegistry creates an empty provenance registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]Factory),
	}
}

// Register adds a source factory under the given name (e.g. "git").
func (r *Registry) Register(name string, factory Factory) {
	r.sources[name] = factory
}

// Get returns a configured source instance for the given name, rooted at dir.
func (r *Registry) Get(name, dir string) (domain.ProvenanceSource, error) {
	factory, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown provenance source: %q", name)
	}
	return factory(dir)
}

// Names returns the sorted list of registered source names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
