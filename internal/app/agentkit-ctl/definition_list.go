package agentkitctl

import (
	"context"
	"fmt"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// DefinitionListOutputItem represents a single definition entry in the list output.
type DefinitionListOutputItem struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Role agent.Role `json:"role"`
}

// DefinitionListOutput captures the list output payload for definitions.
type DefinitionListOutput struct {
	Items []DefinitionListOutputItem `json:"items"`
	Count int                        `json:"count"`
}

// DefinitionListCmd lists the canonical agent definitions.
type DefinitionListCmd struct{}

// Run executes the definition list command.
func (command *DefinitionListCmd) Run(ctx context.Context, registry agent.DefinitionRegistry, renderer *Renderer) error {
	definitions, err := registry.Definitions(ctx)
	if err != nil {
		return fmt.Errorf("list definitions: %w", err)
	}

	items := make([]DefinitionListOutputItem, 0, len(definitions))
	for _, definition := range definitions {
		items = append(items, DefinitionListOutputItem{
			ID:   definition.ID,
			Name: definition.Name,
			Role: definition.Role,
		})
	}

	output := DefinitionListOutput{
		Items: items,
		Count: len(items),
	}

	if err := renderer.Render(output); err != nil {
		return fmt.Errorf("render definition list: %w", err)
	}

	return nil
}

// DefinitionShowCmd shows the canonical definition for a role.
type DefinitionShowCmd struct {
	Role string `arg:"" required:"" help:"Predefined role to show"`
}

// Run executes the definition show command.
func (command *DefinitionShowCmd) Run(ctx context.Context, registry agent.DefinitionRegistry, renderer *Renderer) error {
	definition, err := registry.Definition(ctx, agent.Role(command.Role))
	if err != nil {
		return fmt.Errorf("get definition %s: %w", command.Role, err)
	}

	if err := renderer.Render(definition); err != nil {
		return fmt.Errorf("render definition: %w", err)
	}

	return nil
}
