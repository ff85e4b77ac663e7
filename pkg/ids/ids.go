// Package ids provides the identity source for paragraph formats and
// page/column definitions.
package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces identifiers that are unique within its lifetime.
type Generator interface {
	NewID() string
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func() string

// NewID calls f.
func (f GeneratorFunc) NewID() string { return f() }

// UUID returns a generator of random (version 4) UUID strings.
func UUID() Generator {
	return GeneratorFunc(uuid.NewString)
}

// fallback is the generator used when none is injected. It is not
// replaceable; callers inject their own through options.
var fallback Generator = UUID()

// Sequence yields "<prefix>-1", "<prefix>-2", ... and is safe for concurrent use.
// Tests use it to get stable identifiers.
type Sequence struct {
	prefix string

	mu   sync.Mutex
	next int
}

// NewSequence creates a sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}

// Or returns g, or a random UUID generator when g is nil.
func Or(g Generator) Generator {
	if g == nil {
		return fallback
	}
	return g
}
