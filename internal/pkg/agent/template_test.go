package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTemplate() Template {
	length := 3
	return Template{
		ID:          "template-test",
		Name:        "Test Template",
		Description: "Template used in tests.",
		BaseRole:    RoleDeveloper,
		Base:        validDefinition(),
		Options: []CustomizationOption{
			{
				ID:       "name",
				Name:     "Agent Name",
				Type:     OptionString,
				Required: true,
				Rules: []ValidationRule{
					{
						Type:    RuleMin,
						Params:  RuleParams{Length: &length},
						Message: "Agent Name must be at least 3 characters long",
					},
				},
			},
			{
				ID:           "priority",
				Name:         "Priority",
				Type:         OptionNumber,
				DefaultValue: 5,
			},
		},
		Metadata: TemplateMetadata{
			CreatedAt: time.Now(),
			Author:    "tests",
			Version:   "1.0.0",
			Rating:    4.2,
		},
	}
}

func TestTemplateValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validTemplate().Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		template := validTemplate()
		template.ID = ""
		require.ErrorIs(t, template.Validate(), ErrTemplateIDRequired)
	})

	t.Run("missing name", func(t *testing.T) {
		template := validTemplate()
		template.Name = ""
		require.ErrorIs(t, template.Validate(), ErrTemplateNameRequired)
	})

	t.Run("unknown base role", func(t *testing.T) {
		template := validTemplate()
		template.BaseRole = "wizard"
		require.ErrorIs(t, template.Validate(), ErrRoleUnknown)
	})

	t.Run("invalid base definition", func(t *testing.T) {
		template := validTemplate()
		template.Base.Metadata.Version = "not-a-version"
		require.ErrorIs(t, template.Validate(), ErrVersionInvalid)
	})

	t.Run("duplicate option id", func(t *testing.T) {
		template := validTemplate()
		template.Options = append(template.Options, template.Options[1])
		require.ErrorIs(t, template.Validate(), ErrOptionIDDuplicate)
	})

	t.Run("rating below range", func(t *testing.T) {
		template := validTemplate()
		template.Metadata.Rating = -0.1
		require.ErrorIs(t, template.Validate(), ErrRatingOutOfRange)
	})

	t.Run("rating above range", func(t *testing.T) {
		template := validTemplate()
		template.Metadata.Rating = 5.1
		require.ErrorIs(t, template.Validate(), ErrRatingOutOfRange)
	})
}

func TestCustomizationOptionValidate(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		option := CustomizationOption{Type: OptionString, Required: true}
		require.ErrorIs(t, option.Validate(), ErrOptionIDRequired)
	})

	t.Run("unknown type", func(t *testing.T) {
		option := CustomizationOption{ID: "field", Type: "tuple", Required: true}
		require.ErrorIs(t, option.Validate(), ErrOptionTypeUnknown)
	})

	t.Run("optional without default", func(t *testing.T) {
		option := CustomizationOption{ID: "field", Type: OptionString}
		require.ErrorIs(t, option.Validate(), ErrOptionDefaultRequired)
	})

	t.Run("required without default", func(t *testing.T) {
		option := CustomizationOption{ID: "field", Type: OptionString, Required: true}
		require.NoError(t, option.Validate())
	})

	t.Run("default type mismatch", func(t *testing.T) {
		option := CustomizationOption{ID: "field", Type: OptionNumber, DefaultValue: "five"}
		require.ErrorIs(t, option.Validate(), ErrOptionDefaultMismatch)
	})

	t.Run("default matches type", func(t *testing.T) {
		option := CustomizationOption{ID: "field", Type: OptionNumber, DefaultValue: 5}
		require.NoError(t, option.Validate())
	})
}

func TestTemplateClone(t *testing.T) {
	original := validTemplate()
	original.Options[1].Rules = []ValidationRule{
		{
			Type:    RuleEnum,
			Params:  RuleParams{Values: []any{"a", "b"}},
			Message: "must be a or b",
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	*clone.Options[0].Rules[0].Params.Length = 99
	clone.Options[1].Rules[0].Params.Values[0] = "mutated"
	clone.Base.Goals[0] = "mutated"

	assert.Equal(t, 3, *original.Options[0].Rules[0].Params.Length)
	assert.Equal(t, "a", original.Options[1].Rules[0].Params.Values[0])
	assert.Equal(t, "pass the tests", original.Base.Goals[0])
}
