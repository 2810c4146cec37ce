package mtime_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autorelease/infrastructure/provenance/mtime"
)

func TestCreated(t *testing.T) {
	t.Parallel()

	t.Run("should return the modification time of the fragment", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "change.md")
		require.NoError(t, os.WriteFile(path, []byte("---\nkind: added\n---\nBody.\n"), 0o600))
		stamp := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, os.Chtimes(path, stamp, stamp))

		source, err := mtime.New("")
		require.NoError(t, err)

		// when
		created, createdErr := source.Created(context.Background(), path)

		// then
		require.NoError(t, createdErr)
		assert.WithinDuration(t, stamp, created, time.Second)
	})

	t.Run("should fail for a missing fragment", func(t *testing.T) {
		t.Parallel()

		// given
		source, err := mtime.New("")
		require.NoError(t, err)

		// when
		_, createdErr := source.Created(context.Background(), "no/such/fragment.md")

		// then
		require.Error(t, createdErr)
		assert.Contains(t, createdErr.Error(), "fragment.md")
	})

	t.Run("should identify itself as mtime", func(t *testing.T) {
		t.Parallel()

		// given
		source, err := mtime.New("")
		require.NoError(t, err)

		// then
		assert.Equal(t, "mtime", source.Name())
	})
}
