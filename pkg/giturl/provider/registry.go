package provider

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/giturl/pkg/giturl"
)

// ErrUnknownProvider is returned by Registry.Extract for unregistered names.
var ErrUnknownProvider = errors.New("provider: unknown provider")

// Registry maps provider names to extractors.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]Extractor[Details]
}

func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]Extractor[Details])}
}

// DefaultRegistry returns a registry holding "generic", "gitlab" and
// "azure".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(genericName, Adapt[Generic](ExtractorFunc[Generic](ParseGeneric)))
	r.Register(gitlabName, Adapt[GitLab](ExtractorFunc[GitLab](ParseGitLab)))
	r.Register(azureName, Adapt[AzureDevOps](ExtractorFunc[AzureDevOps](ParseAzureDevOps)))
	return r
}

// Adapt widens a typed extractor to one returning Details.
func Adapt[T Details](e Extractor[T]) Extractor[Details] {
	return ExtractorFunc[Details](func(u *giturl.GitURL) (Details, error) {
		v, err := e.Extract(u)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// Register adds or replaces the extractor for name.
func (r *Registry) Register(name string, e Extractor[Details]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[name] = e
}

func (r *Registry) Lookup(name string) (Extractor[Details], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.extractors[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extract runs the extractor registered under name.
func (r *Registry) Extract(name string, u *giturl.GitURL) (Details, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return Info(u, e)
}
