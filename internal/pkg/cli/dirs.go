package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// StoreConfig locates the on-disk profile store. An empty ProfileDir falls
// back to the ambient tool configuration.
type StoreConfig struct {
	ProfileDir string `help:"Directory holding customization profile files"`
}

// ResolveProfileDir expands and absolutizes the profile directory, preferring
// the CLI flag over the ambient tool configuration.
func ResolveProfileDir(config StoreConfig, tool *ToolConfig) (string, error) {
	dir := config.ProfileDir
	if dir == "" && tool != nil {
		dir = tool.Store.ProfileDir
	}
	if dir == "" {
		dir = DefaultProfileDir
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("expand profile dir: %w", err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve absolute profile dir: %w", err)
	}

	return abs, nil
}
