package agentkitctl

import (
	"context"
	"fmt"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// TemplateListOutputItem represents a single template entry in the list output.
type TemplateListOutputItem struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	BaseRole agent.Role `json:"baseRole"`
	Options  int        `json:"options"`
}

// TemplateListOutput captures the list output payload for templates.
type TemplateListOutput struct {
	Items []TemplateListOutputItem `json:"items"`
	Count int                      `json:"count"`
}

// TemplateListCmd lists the available templates and their roles.
type TemplateListCmd struct{}

// Run executes the template list command.
func (command *TemplateListCmd) Run(ctx context.Context, registry agent.TemplateRegistry, renderer *Renderer) error {
	templates, err := registry.Templates(ctx)
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}

	items := make([]TemplateListOutputItem, 0, len(templates))
	for _, template := range templates {
		items = append(items, TemplateListOutputItem{
			ID:       template.ID,
			Name:     template.Name,
			BaseRole: template.BaseRole,
			Options:  len(template.Options),
		})
	}

	output := TemplateListOutput{
		Items: items,
		Count: len(items),
	}

	if err := renderer.Render(output); err != nil {
		return fmt.Errorf("render template list: %w", err)
	}

	return nil
}

// TemplateShowCmd shows the full template for a role.
type TemplateShowCmd struct {
	Role string `arg:"" required:"" help:"Role the template specializes"`
}

// Run executes the template show command.
func (command *TemplateShowCmd) Run(ctx context.Context, registry agent.TemplateRegistry, renderer *Renderer) error {
	template, err := registry.Template(ctx, agent.Role(command.Role))
	if err != nil {
		return fmt.Errorf("get template %s: %w", command.Role, err)
	}

	if err := renderer.Render(template); err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	return nil
}
