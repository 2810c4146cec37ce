package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autorelease/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("should default to the .changes directory and git provenance", func(t *testing.T) {
		t.Parallel()

		// when
		cfg := config.Default()

		// then
		assert.Equal(t, ".changes", cfg.ChangesDir)
		assert.Equal(t, "git", cfg.Provenance)
		assert.False(t, cfg.AllowEmptyChangelog)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should load a full config file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "changes_dir: fragments\nprovenance: mtime\nallow_empty_changelog: true\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "fragments", cfg.ChangesDir)
		assert.Equal(t, "mtime", cfg.Provenance)
		assert.True(t, cfg.AllowEmptyChangelog)
	})

	t.Run("should fill defaults for omitted values", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "changes_dir: pending\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "pending", cfg.ChangesDir)
		assert.Equal(t, "git", cfg.Provenance)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load("no/such/config.yaml")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no/such/config.yaml")
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "changes_dir: [unclosed\n")

		// when
		_, err := config.Load(path)

		// then
		assert.Error(t, err)
	})

	t.Run("should fail on an unknown provenance source", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "provenance: blame\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "blame")
	})

	t.Run("should fail on an empty changes_dir", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "changes_dir: \"\"\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "changes_dir")
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "autorelease.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
