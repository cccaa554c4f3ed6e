package agentkitctl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// ErrRoleRequired indicates no role was given and none could be resolved from
// a stored profile.
var ErrRoleRequired = errors.New("role required")

// OverrideFlags are the override sources shared by validate and apply.
// Precedence, lowest to highest: stored profile, override file, --set pairs.
type OverrideFlags struct {
	Role    string   `arg:"" optional:"" help:"Role whose template to customize"`
	Profile string   `help:"Stored profile id to load overrides from"`
	File    string   `help:"YAML file with an override map" type:"existingfile"`
	Set     []string `short:"s" help:"Override as key=value; the value is parsed as JSON when possible"`
}

// Resolve collects the role and merged override map from all sources.
func (flags *OverrideFlags) Resolve(ctx context.Context, profiles agent.ProfileRepository, fileSystem afero.Fs) (agent.Role, map[string]any, error) {
	role := agent.Role(flags.Role)
	overrides := map[string]any{}

	if flags.Profile != "" {
		profile, err := profiles.Get(ctx, agent.ProfileID(flags.Profile))
		if err != nil {
			return "", nil, fmt.Errorf("load profile %s: %w", flags.Profile, err)
		}

		if role == "" {
			role = profile.Role
		}

		for key, value := range profile.Overrides {
			overrides[key] = value
		}
	}

	if flags.File != "" {
		data, err := afero.ReadFile(fileSystem, flags.File)
		if err != nil {
			return "", nil, fmt.Errorf("read override file: %w", err)
		}

		var fileOverrides map[string]any
		if err := yaml.Unmarshal(data, &fileOverrides); err != nil {
			return "", nil, fmt.Errorf("unmarshal override file: %w", err)
		}

		for key, value := range fileOverrides {
			overrides[key] = value
		}
	}

	for _, pair := range flags.Set {
		key, value, err := parseSetPair(pair)
		if err != nil {
			return "", nil, err
		}

		overrides[key] = value
	}

	if role == "" {
		return "", nil, ErrRoleRequired
	}

	return role, overrides, nil
}

// parseSetPair splits a key=value pair. The value is decoded as JSON when it
// parses, so numbers, booleans, arrays and null keep their types; anything
// else stays a plain string.
func parseSetPair(pair string) (string, any, error) {
	key, raw, found := strings.Cut(pair, "=")
	if !found || strings.TrimSpace(key) == "" {
		return "", nil, fmt.Errorf("malformed override %q, expected key=value", pair)
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return key, raw, nil
	}

	return key, value, nil
}
