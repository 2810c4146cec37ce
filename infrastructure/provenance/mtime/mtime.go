// Package mtime resolves fragment provenance from filesystem modification
// times. It is the fallback for checkouts without usable git history
// (shallow CI clones, exported archives).
package mtime

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rios0rios0/autorelease/domain"
)

// Source is a domain.ProvenanceSource backed by file modification times.
type Source struct{}

var _ domain.ProvenanceSource = (*Source)(nil)

// New creates the source. The directory argument exists to satisfy the
// registry factory shape; modification times need no root.
func New(_ string) (*Source, error) {
	return &Source{}, nil
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return "mtime"
}

// Created returns the modification time of the fragment file.
func (s *Source) Created(_ context.Context, path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat fragment %q: %w", path, err)
	}
	return info.ModTime(), nil
}
