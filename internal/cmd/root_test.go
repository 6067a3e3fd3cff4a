package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "forge", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "new")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "update")
	assert.Contains(t, names, "version")
}

func TestNewCmdArgValidation(t *testing.T) {
	root := NewRootCmd()

	t.Run("new requires two args", func(t *testing.T) {
		root.SetArgs([]string{"new", "rust"})
		err := root.Execute()
		assert.Error(t, err)
	})

	t.Run("unknown language fails with not-found code", func(t *testing.T) {
		t.Setenv("FORGE_CONFIG", t.TempDir()+"/config.yaml")

		root := NewRootCmd()
		root.SetArgs([]string{"new", "cobol", "demo"})
		err := root.Execute()
		require.Error(t, err)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, ExitNotFound, exitErr.Code)
	})
}

func TestUpdateCmdEmptyCache(t *testing.T) {
	t.Setenv("FORGE_CONFIG", t.TempDir()+"/config.yaml")
	t.Setenv("FORGE_CACHE_DIR", t.TempDir()+"/cache")

	root := NewRootCmd()
	root.SetArgs([]string{"update"})
	assert.NoError(t, root.Execute())
}

func TestVersionCmd(t *testing.T) {
	t.Setenv("FORGE_CONFIG", t.TempDir()+"/config.yaml")

	root := NewRootCmd()
	root.SetArgs([]string{"version"})
	assert.NoError(t, root.Execute())
}

func TestGetConfigDefaults(t *testing.T) {
	forgeConfig = nil
	cfg := getConfig()

	require.NotNil(t, cfg)
	require.NotNil(t, cfg.Templates.AutoUpdate)
	assert.True(t, *cfg.Templates.AutoUpdate)
	assert.Equal(t, 7, cfg.Templates.UpdateIntervalDays)
}
