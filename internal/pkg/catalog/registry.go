package catalog

import (
	"context"
	"fmt"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// DefinitionCatalog is the in-memory implementation of agent.DefinitionRegistry.
// It is read-only after construction and safe for concurrent use.
type DefinitionCatalog struct {
	byRole map[agent.Role]agent.Definition
	order  []agent.Role
}

// NewDefinitionCatalog builds the catalog of canonical definitions.
// Returns an error when the built-in data violates its own invariants.
func NewDefinitionCatalog() (*DefinitionCatalog, error) {
	catalog := &DefinitionCatalog{
		byRole: make(map[agent.Role]agent.Definition),
	}

	seenIDs := make(map[string]bool)
	seenNames := make(map[string]bool)

	for _, definition := range definitions() {
		if err := definition.Validate(); err != nil {
			return nil, fmt.Errorf("definition %s: %w", definition.ID, err)
		}

		if seenIDs[definition.ID] || seenNames[definition.Name] {
			return nil, fmt.Errorf("definition %s: duplicate id or name", definition.ID)
		}
		seenIDs[definition.ID] = true
		seenNames[definition.Name] = true

		if _, exists := catalog.byRole[definition.Role]; exists {
			return nil, fmt.Errorf("definition %s: duplicate role %s", definition.ID, definition.Role)
		}

		catalog.byRole[definition.Role] = definition
		catalog.order = append(catalog.order, definition.Role)
	}

	return catalog, nil
}

// Definition returns a deep copy of the canonical definition for the role.
func (catalog *DefinitionCatalog) Definition(_ context.Context, role agent.Role) (agent.Definition, error) {
	definition, found := catalog.byRole[role]
	if !found {
		return agent.Definition{}, agent.ErrDefinitionNotFound
	}

	return definition.Clone(), nil
}

// Definitions returns a fresh list with one copy per predefined role.
func (catalog *DefinitionCatalog) Definitions(_ context.Context) ([]agent.Definition, error) {
	list := make([]agent.Definition, 0, len(catalog.order))
	for _, role := range catalog.order {
		list = append(list, catalog.byRole[role].Clone())
	}

	return list, nil
}

// TemplateCatalog is the in-memory implementation of agent.TemplateRegistry.
// It is read-only after construction and safe for concurrent use.
type TemplateCatalog struct {
	byRole map[agent.Role]agent.Template
	order  []agent.Role
}

// NewTemplateCatalog builds the catalog of templates: one per predefined role
// plus the RoleCustom fallback. Every non-fallback template's base role must
// equal its registration role.
func NewTemplateCatalog() (*TemplateCatalog, error) {
	catalog := &TemplateCatalog{
		byRole: make(map[agent.Role]agent.Template),
	}

	for _, template := range templates() {
		if err := template.Validate(); err != nil {
			return nil, fmt.Errorf("template %s: %w", template.ID, err)
		}

		role := template.BaseRole
		if _, exists := catalog.byRole[role]; exists {
			return nil, fmt.Errorf("template %s: duplicate role %s", template.ID, role)
		}

		catalog.byRole[role] = template
		catalog.order = append(catalog.order, role)
	}

	for _, role := range agent.PredefinedRoles() {
		if _, exists := catalog.byRole[role]; !exists {
			return nil, fmt.Errorf("role %s: missing template", role)
		}
	}

	if _, exists := catalog.byRole[agent.RoleCustom]; !exists {
		return nil, fmt.Errorf("role %s: missing template", agent.RoleCustom)
	}

	return catalog, nil
}

// Template returns a deep copy of the template for the role.
func (catalog *TemplateCatalog) Template(_ context.Context, role agent.Role) (agent.Template, error) {
	template, found := catalog.byRole[role]
	if !found {
		return agent.Template{}, agent.ErrTemplateNotFound
	}

	return template.Clone(), nil
}

// Templates returns a fresh list with one copy per registered role.
func (catalog *TemplateCatalog) Templates(_ context.Context) ([]agent.Template, error) {
	list := make([]agent.Template, 0, len(catalog.order))
	for _, role := range catalog.order {
		list = append(list, catalog.byRole[role].Clone())
	}

	return list, nil
}

// Has reports whether the role has a template.
func (catalog *TemplateCatalog) Has(_ context.Context, role agent.Role) (bool, error) {
	_, found := catalog.byRole[role]
	return found, nil
}

// Roles lists every role with a template, including RoleCustom.
func (catalog *TemplateCatalog) Roles(_ context.Context) ([]agent.Role, error) {
	return append([]agent.Role(nil), catalog.order...), nil
}
