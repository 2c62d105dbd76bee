package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
epsilon: 0.001
render:
  scale: 4
`)
	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.001, config.Epsilon)
	assert.Equal(t, 4.0, config.Render.Scale)

	// Untouched settings keep their defaults
	assert.Equal(t, Default().SimplifyTolerance, config.SimplifyTolerance)
	assert.Equal(t, Default().Render.Padding, config.Render.Padding)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(writeConfig(t, "epsilom: 0.1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "epsilom")
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeConfig(t, "render:\n  scale: 0\n"))
		assert.EqualError(t, err, "render.scale must be positive, got 0")
	})

	t.Run("negative tolerance", func(t *testing.T) {
		_, err := Load(writeConfig(t, "simplify_tolerance: -1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simplify_tolerance")
	})
}
