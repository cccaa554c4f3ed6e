package customize

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

func TestEffectiveValues(t *testing.T) {
	template := nameAgeTemplate()

	t.Run("defaults fill omitted keys", func(t *testing.T) {
		values := EffectiveValues(template, map[string]any{"name": "Valid Name"})
		assert.Equal(t, map[string]any{"name": "Valid Name", "age": 25}, values)
	})

	t.Run("explicit null is preserved", func(t *testing.T) {
		values := EffectiveValues(template, map[string]any{"name": "Valid Name", "age": nil})

		age, present := values["age"]
		require.True(t, present)
		assert.Nil(t, age)
	})

	t.Run("omitted key without default is absent", func(t *testing.T) {
		values := EffectiveValues(template, map[string]any{})

		_, present := values["name"]
		assert.False(t, present)
		assert.Equal(t, 25, values["age"])
	})

	t.Run("unknown keys are dropped", func(t *testing.T) {
		values := EffectiveValues(template, map[string]any{"name": "Valid Name", "nickname": "shorty"})

		_, present := values["nickname"]
		assert.False(t, present)
	})

	t.Run("values share no data with the overrides", func(t *testing.T) {
		template := nameAgeTemplate()
		template.Options = append(template.Options, agent.CustomizationOption{
			ID:   "tools",
			Name: "Tools",
			Type: agent.OptionArray,
		})

		overrides := map[string]any{"name": "Valid Name", "tools": []any{"read-file"}}
		values := EffectiveValues(template, overrides)

		values["tools"].([]any)[0] = "mutated"
		assert.Equal(t, "read-file", overrides["tools"].([]any)[0])
	})
}

func TestApply(t *testing.T) {
	template := nameAgeTemplate()

	t.Run("produces a customized definition", func(t *testing.T) {
		before := time.Now().UTC()

		definition, result, err := Apply(template, map[string]any{"name": "Valid Name", "age": 30}, ApplyOptions{})
		require.NoError(t, err)
		assert.True(t, result.Valid)

		_, err = uuid.Parse(definition.ID)
		require.NoError(t, err)
		assert.NotEqual(t, template.Base.ID, definition.ID)

		assert.Equal(t, "Valid Name", definition.Configuration.CustomParams["name"])
		assert.Equal(t, 30, definition.Configuration.CustomParams["age"])

		assert.Equal(t, "1.0.0", definition.Metadata.Version)
		assert.Equal(t, "agentkit", definition.Metadata.Author)
		assert.False(t, definition.Metadata.CreatedAt.Before(before))
		assert.Equal(t, definition.Metadata.CreatedAt, definition.Metadata.UpdatedAt)
	})

	t.Run("explicit options override the defaults", func(t *testing.T) {
		definition, _, err := Apply(template, map[string]any{"name": "Valid Name"}, ApplyOptions{
			Author:  "someone",
			Version: "2.1.0",
		})
		require.NoError(t, err)

		assert.Equal(t, "someone", definition.Metadata.Author)
		assert.Equal(t, "2.1.0", definition.Metadata.Version)
	})

	t.Run("each application gets a fresh id", func(t *testing.T) {
		first, _, err := Apply(template, map[string]any{"name": "Valid Name"}, ApplyOptions{})
		require.NoError(t, err)

		second, _, err := Apply(template, map[string]any{"name": "Valid Name"}, ApplyOptions{})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("invalid overrides return the violations", func(t *testing.T) {
		definition, result, err := Apply(template, map[string]any{"name": "ab"}, ApplyOptions{})
		require.ErrorIs(t, err, ErrCustomizationInvalid)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Agent Name must be at least 3 characters long"}, result.Errors)
		assert.Empty(t, definition.ID)
	})

	t.Run("template base is not mutated", func(t *testing.T) {
		template := nameAgeTemplate()
		require.Nil(t, template.Base.Configuration.CustomParams)

		_, _, err := Apply(template, map[string]any{"name": "Valid Name"}, ApplyOptions{})
		require.NoError(t, err)

		assert.Nil(t, template.Base.Configuration.CustomParams)
		assert.Empty(t, template.Base.Metadata.Author)
	})
}
