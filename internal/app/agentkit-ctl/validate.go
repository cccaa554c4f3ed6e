package agentkitctl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/customize"
)

// ValidateCmd validates customization overrides against a role's template.
type ValidateCmd struct {
	OverrideFlags
}

// Run executes the validate command. Validation failures are reported in the
// rendered result, not as command errors.
func (command *ValidateCmd) Run(
	ctx context.Context,
	registry agent.TemplateRegistry,
	profiles agent.ProfileRepository,
	fileSystem afero.Fs,
	renderer *Renderer,
) error {
	role, overrides, err := command.Resolve(ctx, profiles, fileSystem)
	if err != nil {
		return err
	}

	template, err := registry.Template(ctx, role)
	if err != nil {
		return fmt.Errorf("get template %s: %w", role, err)
	}

	result := customize.Validate(template, overrides)
	if !result.Valid {
		slog.Warn("Customization invalid.",
			slog.String("role", string(role)),
			slog.Int("violations", len(result.Errors)),
		)
	}

	if err := renderer.Render(result); err != nil {
		return fmt.Errorf("render validation result: %w", err)
	}

	return nil
}
