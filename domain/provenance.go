package domain

import (
	"context"
	"time"
)

// ProvenanceSource supplies the instant a fragment was introduced, used only
// as the ordering tiebreak. How the instant is derived (version-control
// history, file modification time) is an infrastructure concern; the core
// requires only that it is deterministic.
type ProvenanceSource interface {
	// Name returns the source identifier (e.g. "git", "mtime").
	Name() string

	// Created returns the creation instant of the fragment at the given path.
	Created(ctx context.Context, path string) (time.Time, error)
}
