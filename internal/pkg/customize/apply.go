package customize

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mcuadros/go-defaults"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// ErrCustomizationInvalid indicates the overrides failed validation against
// the template. The per-field messages are in the accompanying Result.
var ErrCustomizationInvalid = errors.New("customization invalid")

// ApplyOptions tunes the metadata of definitions produced by Apply.
type ApplyOptions struct {
	// Author is recorded in the produced definition metadata.
	Author string `default:"agentkit"`

	// Version is the semantic version stamped on the produced definition.
	Version string `default:"1.0.0"`
}

// EffectiveValues resolves the value of every customization option: the
// caller's value when the key is present (explicit nils included), otherwise
// the option default. Options with no value at all are omitted. The returned
// map shares no data with either input.
func EffectiveValues(template agent.Template, overrides map[string]any) map[string]any {
	values := make(map[string]any, len(template.Options))

	for _, option := range template.Options {
		value, provided := overrides[option.ID]
		if !provided {
			if option.DefaultValue == nil {
				continue
			}
			value = option.DefaultValue
		}

		values[option.ID] = agent.CloneValue(value)
	}

	return values
}

// Apply validates the overrides and, on success, produces a customized
// definition: a deep copy of the template base with a fresh id, the effective
// values merged into the configuration custom params, and refreshed metadata.
// On validation failure the Result carries the violations and the returned
// error is ErrCustomizationInvalid.
func Apply(template agent.Template, overrides map[string]any, options ApplyOptions) (agent.Definition, Result, error) {
	defaults.SetDefaults(&options)

	result := Validate(template, overrides)
	if !result.Valid {
		return agent.Definition{}, result, ErrCustomizationInvalid
	}

	definition := template.Base.Clone()
	definition.ID = uuid.NewString()

	values := EffectiveValues(template, overrides)
	if len(values) > 0 {
		if definition.Configuration.CustomParams == nil {
			definition.Configuration.CustomParams = make(map[string]any, len(values))
		}
		for key, value := range values {
			definition.Configuration.CustomParams[key] = value
		}
	}

	now := time.Now().UTC()
	definition.Metadata.CreatedAt = now
	definition.Metadata.UpdatedAt = now
	definition.Metadata.Version = options.Version
	definition.Metadata.Author = options.Author

	return definition, result, nil
}
