package application

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autorelease/domain"
)

// ReleaseService orchestrates the full release flow: load pending fragments,
// resolve their provenance, and either compute the required bump level or
// compile the changelog section.
type ReleaseService struct {
	store      domain.FragmentStore
	provenance domain.ProvenanceSource
	clock      domain.Clock
}

// NewReleaseService creates a new service with the given collaborators.
func NewReleaseService(
	store domain.FragmentStore,
	provenance domain.ProvenanceSource,
	clock domain.Clock,
) *ReleaseService {
	return &ReleaseService{
		store:      store,
		provenance: provenance,
		clock:      clock,
	}
}

// PendingChange pairs a fully resolved change with the fragment path it
// came from, for diagnostics and listings.
type PendingChange struct {
	Path   string
	Change domain.Change
}

// ComputeBumpLevel returns the minimum semantic-version increment required
// across all pending changes, given the current version. Zero pending
// changes is an error.
func (s *ReleaseService) ComputeBumpLevel(
	ctx context.Context,
	current *semver.Version,
) (domain.BumpLevel, error) {
	changes, err := s.loadChanges(ctx)
	if err != nil {
		return domain.Patch, err
	}

	return domain.MaxBumpLevel(current, changes)
}

// CompileChangelog writes the markdown section for the given new version.
// An empty fragment set is an error unless allowEmpty is set, in which case
// only the heading is rendered.
func (s *ReleaseService) CompileChangelog(
	ctx context.Context,
	w io.Writer,
	newVersion *semver.Version,
	allowEmpty bool,
) error {
	changes, err := s.loadChanges(ctx)
	if err != nil {
		return err
	}

	if len(changes) == 0 && !allowEmpty {
		return fmt.Errorf("cannot compile changelog: %w", domain.ErrEmptyBatch)
	}

	return domain.WriteChangelogSection(w, newVersion.String(), s.clock, changes)
}

// ListPending returns every pending change with its fragment path, in the
// order a compiled changelog would render them.
func (s *ReleaseService) ListPending(ctx context.Context) ([]PendingChange, error) {
	pending, err := s.loadPending(ctx)
	if err != nil {
		return nil, err
	}

	sortPending(pending)
	return pending, nil
}

// loadChanges loads and resolves every pending fragment into a Change.
func (s *ReleaseService) loadChanges(ctx context.Context) ([]domain.Change, error) {
	pending, err := s.loadPending(ctx)
	if err != nil {
		return nil, err
	}

	changes := make([]domain.Change, 0, len(pending))
	for _, p := range pending {
		changes = append(changes, p.Change)
	}
	return changes, nil
}

func (s *ReleaseService) loadPending(ctx context.Context) ([]PendingChange, error) {
	fragments, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Loaded %d change fragment(s)", len(fragments))

	pending := make([]PendingChange, 0, len(fragments))
	for _, fragment := range fragments {
		created, provErr := s.provenance.Created(ctx, fragment.Path)
		if provErr != nil {
			return nil, fmt.Errorf(
				"failed to resolve provenance of %q: %w", fragment.Path, provErr,
			)
		}

		pending = append(pending, PendingChange{
			Path: fragment.Path,
			Change: domain.Change{
				Kind:     fragment.Kind,
				Breaking: fragment.Breaking,
				Priority: fragment.Priority,
				Created:  created,
				Content:  fragment.Content,
			},
		})
	}

	return pending, nil
}

// sortPending applies the rendering order to a listing, keeping paths
// attached to their changes.
func sortPending(pending []PendingChange) {
	sort.SliceStable(pending, func(i, j int) bool {
		return domain.Less(pending[i].Change, pending[j].Change)
	})
}
