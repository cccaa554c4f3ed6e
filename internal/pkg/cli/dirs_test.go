package cli

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProfileDir(t *testing.T) {
	t.Run("flag wins over tool config", func(t *testing.T) {
		tool := &ToolConfig{Store: StoreSettings{ProfileDir: "/from/config"}}

		dir, err := ResolveProfileDir(StoreConfig{ProfileDir: "/from/flag"}, tool)
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", dir)
	})

	t.Run("tool config fills empty flag", func(t *testing.T) {
		tool := &ToolConfig{Store: StoreSettings{ProfileDir: "/from/config"}}

		dir, err := ResolveProfileDir(StoreConfig{}, tool)
		require.NoError(t, err)
		assert.Equal(t, "/from/config", dir)
	})

	t.Run("falls back to the default", func(t *testing.T) {
		dir, err := ResolveProfileDir(StoreConfig{}, nil)
		require.NoError(t, err)

		expanded, err := homedir.Expand(DefaultProfileDir)
		require.NoError(t, err)
		assert.Equal(t, expanded, dir)
	})

	t.Run("tilde expands to the home directory", func(t *testing.T) {
		dir, err := ResolveProfileDir(StoreConfig{ProfileDir: "~/agents"}, nil)
		require.NoError(t, err)

		home, err := homedir.Dir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "agents"), dir)
	})

	t.Run("relative paths become absolute", func(t *testing.T) {
		dir, err := ResolveProfileDir(StoreConfig{ProfileDir: "profiles"}, nil)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(dir))
	})
}
