package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

func TestNewDefinitionCatalog(t *testing.T) {
	catalog, err := NewDefinitionCatalog()
	require.NoError(t, err)

	list, err := catalog.Definitions(context.Background())
	require.NoError(t, err)
	require.Len(t, list, len(agent.PredefinedRoles()))

	t.Run("one definition per predefined role", func(t *testing.T) {
		for _, role := range agent.PredefinedRoles() {
			definition, err := catalog.Definition(context.Background(), role)
			require.NoError(t, err)
			assert.Equal(t, role, definition.Role)
			assert.NoError(t, definition.Validate())
		}
	})

	t.Run("unique ids and names", func(t *testing.T) {
		ids := make(map[string]bool)
		names := make(map[string]bool)
		for _, definition := range list {
			assert.False(t, ids[definition.ID], "id %s seen twice", definition.ID)
			assert.False(t, names[definition.Name], "name %s seen twice", definition.Name)
			ids[definition.ID] = true
			names[definition.Name] = true
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := catalog.Definition(context.Background(), "wizard")
		require.ErrorIs(t, err, agent.ErrDefinitionNotFound)
	})

	t.Run("custom role has no definition", func(t *testing.T) {
		_, err := catalog.Definition(context.Background(), agent.RoleCustom)
		require.ErrorIs(t, err, agent.ErrDefinitionNotFound)
	})
}

func TestDefinitionCatalogReturnsCopies(t *testing.T) {
	catalog, err := NewDefinitionCatalog()
	require.NoError(t, err)

	first, err := catalog.Definition(context.Background(), agent.RoleDeveloper)
	require.NoError(t, err)

	first.Name = "mutated"
	first.Goals[0] = "mutated"
	first.Configuration.Capabilities.AllowedTools[0] = "mutated"

	second, err := catalog.Definition(context.Background(), agent.RoleDeveloper)
	require.NoError(t, err)

	assert.NotEqual(t, "mutated", second.Name)
	assert.NotEqual(t, "mutated", second.Goals[0])
	assert.NotEqual(t, "mutated", second.Configuration.Capabilities.AllowedTools[0])
}

func TestNewTemplateCatalog(t *testing.T) {
	catalog, err := NewTemplateCatalog()
	require.NoError(t, err)

	t.Run("every predefined role has a template with matching base role", func(t *testing.T) {
		for _, role := range agent.PredefinedRoles() {
			found, err := catalog.Has(context.Background(), role)
			require.NoError(t, err)
			require.True(t, found, "role %s", role)

			template, err := catalog.Template(context.Background(), role)
			require.NoError(t, err)
			assert.Equal(t, role, template.BaseRole)
			assert.NoError(t, template.Validate())
		}
	})

	t.Run("custom fallback template", func(t *testing.T) {
		template, err := catalog.Template(context.Background(), agent.RoleCustom)
		require.NoError(t, err)
		assert.Equal(t, agent.RoleCustom, template.BaseRole)
		assert.NoError(t, template.Validate())
	})

	t.Run("roles include custom", func(t *testing.T) {
		roles, err := catalog.Roles(context.Background())
		require.NoError(t, err)
		assert.Len(t, roles, len(agent.PredefinedRoles())+1)
		assert.Contains(t, roles, agent.RoleCustom)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := catalog.Template(context.Background(), "wizard")
		require.ErrorIs(t, err, agent.ErrTemplateNotFound)

		found, err := catalog.Has(context.Background(), "wizard")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestTemplateCatalogReturnsCopies(t *testing.T) {
	catalog, err := NewTemplateCatalog()
	require.NoError(t, err)

	first, err := catalog.Template(context.Background(), agent.RoleTester)
	require.NoError(t, err)

	second, err := catalog.Template(context.Background(), agent.RoleTester)
	require.NoError(t, err)
	require.Equal(t, first, second)

	first.Options[0].Name = "mutated"
	first.Options[0].Rules[0].Message = "mutated"
	first.Base.Goals[0] = "mutated"

	third, err := catalog.Template(context.Background(), agent.RoleTester)
	require.NoError(t, err)

	assert.NotEqual(t, "mutated", third.Options[0].Name)
	assert.NotEqual(t, "mutated", third.Options[0].Rules[0].Message)
	assert.NotEqual(t, "mutated", third.Base.Goals[0])
}

func TestTemplateBasesMatchCanonicalDefinitions(t *testing.T) {
	definitionCatalog, err := NewDefinitionCatalog()
	require.NoError(t, err)

	templateCatalog, err := NewTemplateCatalog()
	require.NoError(t, err)

	for _, role := range agent.PredefinedRoles() {
		definition, err := definitionCatalog.Definition(context.Background(), role)
		require.NoError(t, err)

		template, err := templateCatalog.Template(context.Background(), role)
		require.NoError(t, err)

		assert.Equal(t, definition, template.Base, "role %s", role)
	}
}
