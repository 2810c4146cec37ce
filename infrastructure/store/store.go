// Package store reads pending change fragments from a directory, one file
// per change, each holding YAML frontmatter followed by a free-text body.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/autorelease/domain"
)

// DirectoryStore is a domain.FragmentStore backed by a flat directory of
// fragment files.
type DirectoryStore struct {
	dir string
}

var _ domain.FragmentStore = (*DirectoryStore)(nil)

// NewDirectoryStore creates a store reading from the given directory.
func NewDirectoryStore(dir string) *DirectoryStore {
	return &DirectoryStore{dir: dir}
}

// Dir returns the directory this store reads from.
func (s *DirectoryStore) Dir() string {
	return s.dir
}

// Load reads and parses every fragment file in the directory. Entries come
// back in filename order, and any unreadable or malformed fragment aborts
// the whole load.
func (s *DirectoryStore) Load(ctx context.Context) ([]domain.Fragment, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open changes directory %q: %w", s.dir, err)
	}

	fragments := make([]domain.Fragment, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read change fragment %q: %w", path, readErr)
		}

		fragment, parseErr := ParseFragment(path, string(data))
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse change fragment %q: %w", path, parseErr)
		}
		fragments = append(fragments, fragment)
	}

	return fragments, nil
}
