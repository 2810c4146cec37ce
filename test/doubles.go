// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"
	"time"

	"github.com/rios0rios0/autorelease/domain"
)

// ---------------------------------------------------------------------------
// StubFragmentStore
// ---------------------------------------------------------------------------

// StubFragmentStore implements domain.FragmentStore with canned fragments.
// It records how often Load was called.
type StubFragmentStore struct {
	Fragments []domain.Fragment
	LoadErr   error

	// spy: number of Load invocations
	LoadCalls int
}

var _ domain.FragmentStore = (*StubFragmentStore)(nil)

func (s *StubFragmentStore) Load(_ context.Context) ([]domain.Fragment, error) {
	s.LoadCalls++
	return s.Fragments, s.LoadErr
}

// ---------------------------------------------------------------------------
// StubProvenanceSource
// ---------------------------------------------------------------------------

// StubProvenanceSource implements domain.ProvenanceSource from a fixed
// path -> instant map. Unknown paths return an error, mimicking a fragment
// without history.
type StubProvenanceSource struct {
	Instants map[string]time.Time
	Err      error

	// spy: paths that were resolved
	ResolvedPaths []string
}

var _ domain.ProvenanceSource = (*StubProvenanceSource)(nil)

func (s *StubProvenanceSource) Name() string { return "stub" }

func (s *StubProvenanceSource) Created(_ context.Context, path string) (time.Time, error) {
	s.ResolvedPaths = append(s.ResolvedPaths, path)
	if s.Err != nil {
		return time.Time{}, s.Err
	}
	if instant, ok := s.Instants[path]; ok {
		return instant, nil
	}
	return time.Time{}, fmt.Errorf("no provenance for %s", path)
}

// ---------------------------------------------------------------------------
// FixedClock
// ---------------------------------------------------------------------------

// FixedClock returns a domain.Clock frozen at the given instant.
func FixedClock(instant time.Time) domain.Clock {
	return func() time.Time { return instant }
}
