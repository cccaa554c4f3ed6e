package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadToolConfigDefaults(t *testing.T) {
	config, err := LoadToolConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultProfileDir, config.Store.ProfileDir)
	assert.Equal(t, "agentkit", config.Apply.Author)
	assert.Equal(t, "1.0.0", config.Apply.Version)
}

func TestLoadToolConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("store:\n  profile_dir: /srv/profiles\napply:\n  author: platform-team\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	config, err := LoadToolConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/profiles", config.Store.ProfileDir)
	assert.Equal(t, "platform-team", config.Apply.Author)
	assert.Equal(t, "1.0.0", config.Apply.Version)
}

func TestLoadToolConfigFromEnvironment(t *testing.T) {
	t.Setenv("AGENTKIT_STORE_PROFILE_DIR", "/env/profiles")
	t.Setenv("AGENTKIT_APPLY_VERSION", "3.0.0")

	config, err := LoadToolConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/env/profiles", config.Store.ProfileDir)
	assert.Equal(t, "3.0.0", config.Apply.Version)
	assert.Equal(t, "agentkit", config.Apply.Author)
}

func TestLoadToolConfigEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  profile_dir: /file/profiles\n"), 0o644))

	t.Setenv("AGENTKIT_STORE_PROFILE_DIR", "/env/profiles")

	config, err := LoadToolConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/profiles", config.Store.ProfileDir)
}

func TestLoadToolConfigMissingFile(t *testing.T) {
	_, err := LoadToolConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
