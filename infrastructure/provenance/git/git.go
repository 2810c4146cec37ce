// Package git resolves fragment provenance from version-control history:
// a fragment's creation instant is the committer time of the oldest commit
// that touches it.
package git

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/autorelease/domain"
)

// Source is a domain.ProvenanceSource backed by the enclosing git repository.
type Source struct {
	repo *gogit.Repository
	root string
}

var _ domain.ProvenanceSource = (*Source)(nil)

// New opens the repository enclosing dir, walking up the directory tree to
// find the repository root.
func New(dir string) (*Source, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Source{repo: repo, root: worktree.Filesystem.Root()}, nil
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return "git"
}

// Created returns the committer time of the oldest commit touching the
// fragment. A fragment that is not yet tracked has no history and is an
// error: its ordering position would otherwise be undefined.
func (s *Source) Created(ctx context.Context, path string) (time.Time, error) {
	rel, err := s.relativePath(path)
	if err != nil {
		return time.Time{}, err
	}

	iter, err := s.repo.Log(&gogit.LogOptions{
		FileName: &rel,
		Order:    gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read history of %q: %w", path, err)
	}
	defer iter.Close()

	var oldest *object.Commit
	forErr := iter.ForEach(func(commit *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		oldest = commit
		return nil
	})
	if forErr != nil {
		return time.Time{}, fmt.Errorf("failed to walk history of %q: %w", path, forErr)
	}
	if oldest == nil {
		return time.Time{}, fmt.Errorf("fragment %q has no commit history (not committed yet?)", path)
	}

	return oldest.Committer.When, nil
}

// relativePath converts a fragment path into the slash-separated,
// repo-root-relative form go-git expects.
func (s *Source) relativePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return "", fmt.Errorf("fragment %q is outside the repository %q: %w", path, s.root, err)
	}

	return filepath.ToSlash(rel), nil
}
