package domain

import (
	"errors"

	"github.com/Masterminds/semver/v3"
)

// BumpLevel is the semantic-versioning increment required by a change.
// Levels are totally ordered: Patch < Minor < Major.
type BumpLevel int

const (
	Patch BumpLevel = iota
	Minor
	Major
)

func (l BumpLevel) String() string {
	switch l {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "patch"
	}
}

// ErrEmptyBatch is returned when a bump level is requested for zero pending
// changes. There is no sensible "no bump" default: the command presupposes
// that at least one change is waiting to be released.
var ErrEmptyBatch = errors.New("expected at least one pending change")

// versionShape partitions versions by how much API stability the project
// has already committed to.
type versionShape int

const (
	shapeStable  versionShape = iota // major >= 1
	shapePre                         // major == 0, minor >= 1
	shapeInitial                     // major == 0, minor == 0
)

func shapeOf(version *semver.Version) versionShape {
	switch {
	case version.Major() >= 1:
		return shapeStable
	case version.Minor() >= 1:
		return shapePre
	default:
		return shapeInitial
	}
}

// bumpRule is one row of the policy decision table. Rules are evaluated
// top to bottom and the first match wins, so the order encodes priority
// between overlapping conditions.
type bumpRule struct {
	when  func(shape versionShape, kind Kind, breaking *bool) bool
	level BumpLevel
}

func isChangedOrRemoved(kind Kind) bool {
	return kind == KindChanged || kind == KindRemoved
}

func explicitly(breaking *bool, value bool) bool {
	return breaking != nil && *breaking == value
}

// bumpRules encodes the release policy. Unspecified breaking status is
// treated pessimistically (as if breaking) everywhere except where it is
// explicitly non-breaking, which downgrades severity by exactly one level.
//
// Branches that share a result are kept separate on purpose: future policy
// edits may need to distinguish them.
var bumpRules = []bumpRule{
	// Is this correct?
	{func(_ versionShape, kind Kind, _ *bool) bool {
		return kind == KindSecurity || kind == KindFixed
	}, Patch},

	{func(shape versionShape, kind Kind, breaking *bool) bool {
		return shape == shapeStable && isChangedOrRemoved(kind) && explicitly(breaking, false)
	}, Minor},
	{func(shape versionShape, kind Kind, _ *bool) bool {
		return shape == shapeStable && isChangedOrRemoved(kind)
	}, Major},
	{func(shape versionShape, _ Kind, breaking *bool) bool {
		return shape == shapeStable && explicitly(breaking, true)
	}, Major},
	{func(shape versionShape, _ Kind, _ *bool) bool {
		return shape == shapeStable
	}, Minor},

	{func(shape versionShape, kind Kind, breaking *bool) bool {
		return shape == shapePre && isChangedOrRemoved(kind) && explicitly(breaking, false)
	}, Patch},
	{func(shape versionShape, kind Kind, _ *bool) bool {
		return shape == shapePre && isChangedOrRemoved(kind)
	}, Minor},
	{func(shape versionShape, _ Kind, breaking *bool) bool {
		return shape == shapePre && explicitly(breaking, true)
	}, Minor},
	{func(shape versionShape, _ Kind, _ *bool) bool {
		return shape == shapePre
	}, Patch},

	{func(shape versionShape, _ Kind, _ *bool) bool {
		return shape == shapeInitial
	}, Patch},
}

// ComputeBumpLevel returns the increment a single change requires against
// the given current version. Pure, total, and deterministic.
func ComputeBumpLevel(version *semver.Version, change Change) BumpLevel {
	shape := shapeOf(version)
	for _, rule := range bumpRules {
		if rule.when(shape, change.Kind, change.Breaking) {
			return rule.level
		}
	}
	// The table is total over the three shapes; this is unreachable.
	return Patch
}

// MaxBumpLevel returns the highest increment required across a batch of
// pending changes. An empty batch is an error, not a default level.
func MaxBumpLevel(version *semver.Version, changes []Change) (BumpLevel, error) {
	if len(changes) == 0 {
		return Patch, ErrEmptyBatch
	}

	level := Patch
	for _, change := range changes {
		if l := ComputeBumpLevel(version, change); l > level {
			level = l
		}
	}
	return level, nil
}
