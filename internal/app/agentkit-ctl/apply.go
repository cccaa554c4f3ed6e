package agentkitctl

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/customize"
)

// ApplyCmd validates overrides and renders the resulting customized
// definition for downstream tooling.
type ApplyCmd struct {
	OverrideFlags
}

// ApplyOutput pairs the produced definition with the validation result.
type ApplyOutput struct {
	Definition agent.Definition `json:"definition"`
	Result     customize.Result `json:"result"`
}

// Run executes the apply command. Unlike validate, an invalid customization
// is a command error here: there is no definition to hand downstream.
func (command *ApplyCmd) Run(
	ctx context.Context,
	registry agent.TemplateRegistry,
	profiles agent.ProfileRepository,
	fileSystem afero.Fs,
	tool *cli.ToolConfig,
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

	options := customize.ApplyOptions{
		Author:  tool.Apply.Author,
		Version: tool.Apply.Version,
	}

	definition, result, err := customize.Apply(template, overrides, options)
	if err != nil {
		if errors.Is(err, customize.ErrCustomizationInvalid) {
			if renderErr := renderer.Render(result); renderErr != nil {
				return fmt.Errorf("render validation result: %w", renderErr)
			}
		}

		return fmt.Errorf("apply customization: %w", err)
	}

	output := ApplyOutput{
		Definition: definition,
		Result:     result,
	}

	if err := renderer.Render(output); err != nil {
		return fmt.Errorf("render customized definition: %w", err)
	}

	return nil
}
