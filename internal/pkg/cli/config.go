package cli

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultProfileDir is where profiles live when nothing else is configured.
const DefaultProfileDir = "~/.orbiqd/agentkit/profiles"

// ToolConfig is the ambient tool configuration, resolved from an optional
// YAML file and AGENTKIT_ environment variables. CLI flags take precedence
// over all of it.
type ToolConfig struct {
	Store StoreSettings `koanf:"store"`
	Apply ApplySettings `koanf:"apply"`
}

// StoreSettings configures the profile store location.
type StoreSettings struct {
	ProfileDir string `koanf:"profile_dir"`
}

// ApplySettings configures metadata stamped on customized definitions.
type ApplySettings struct {
	Author  string `koanf:"author"`
	Version string `koanf:"version"`
}

// LoadToolConfig resolves the ambient tool configuration. The path may be
// empty, in which case only built-in defaults and environment variables
// apply (AGENTKIT_STORE_PROFILE_DIR -> store.profile_dir).
func LoadToolConfig(path string) (*ToolConfig, error) {
	k := koanf.New(".")

	k.Set("store.profile_dir", DefaultProfileDir)
	k.Set("apply.author", "agentkit")
	k.Set("apply.version", "1.0.0")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("AGENTKIT_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "AGENTKIT_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	var config ToolConfig
	if err := k.Unmarshal("", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
