package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".forge"), paths.HomeDir)
	assert.Equal(t, filepath.Join(homeDir, ".forge", "config.yaml"), paths.ConfigFile)
	assert.True(t, filepath.IsAbs(paths.CacheDir))
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env override takes precedence", func(t *testing.T) {
		t.Setenv("FORGE_CONFIG", "/custom/config.yaml")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config.yaml", path)
	})
}

func TestGetCacheDir(t *testing.T) {
	t.Run("env override takes precedence", func(t *testing.T) {
		t.Setenv("FORGE_CACHE_DIR", "/custom/cache")

		path, err := GetCacheDir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/cache", path)
	})
}

func TestEnsureCacheDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	require.NoError(t, EnsureCacheDir(dir))
	assert.DirExists(t, dir)
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no tilde",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "tilde with path",
			input:    "~/projects/demo",
			expected: filepath.Join(homeDir, "projects", "demo"),
		},
		{
			name:     "tilde username pattern (not expanded)",
			input:    "~username/file",
			expected: "~username/file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
