// Package registry keeps named document builders, such as the examples the
// CLI can render.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/docframe/pkg/content"
)

// ErrNotFound is returned for names that were never registered.
var ErrNotFound = errors.New("document not found")

// BuildFunc produces a fresh document on each call.
type BuildFunc func() (*content.Document, error)

// Registry manages the available documents.
type Registry struct {
	mu    sync.RWMutex
	docs  map[string]BuildFunc
	notes map[string]string
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		docs:  make(map[string]BuildFunc),
		notes: make(map[string]string),
	}
}

// Register adds a document under name with a one-line description.
// If a document with the same name exists, it is overwritten.
func (r *Registry) Register(name, description string, fn BuildFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[name] = fn
	r.notes[name] = description
}

// Build looks up a document by name and builds it.
func (r *Registry) Build(name string) (*content.Document, error) {
	r.mu.RLock()
	fn, ok := r.docs[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return fn()
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.docs))
	for name := range r.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the description given at registration.
func (r *Registry) Description(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.notes[name]
}
