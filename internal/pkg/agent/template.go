package agent

import (
	"errors"
	"time"
)

// OptionType declares the expected value type of a customization option.
type OptionType string

const (
	OptionString  OptionType = "string"
	OptionNumber  OptionType = "number"
	OptionBoolean OptionType = "boolean"
	OptionArray   OptionType = "array"
	OptionObject  OptionType = "object"
)

// Known reports whether the option type belongs to the enumeration.
func (optionType OptionType) Known() bool {
	switch optionType {
	case OptionString, OptionNumber, OptionBoolean, OptionArray, OptionObject:
		return true
	default:
		return false
	}
}

// RuleType classifies a validation rule.
type RuleType string

const (
	// RuleMin bounds a string length or a numeric value from below.
	RuleMin RuleType = "min"

	// RuleMax bounds a string length or a numeric value from above.
	RuleMax RuleType = "max"

	// RuleEnum restricts the value to a fixed set.
	RuleEnum RuleType = "enum"
)

// Template is a blueprint for producing a customized agent definition.
type Template struct {
	// ID uniquely identifies the template across the catalog.
	ID string `json:"id"`

	// Name is the display name of the template.
	Name string `json:"name"`

	// Description explains what kind of agent the template produces.
	Description string `json:"description"`

	// BaseRole is the role the template specializes.
	BaseRole Role `json:"baseRole"`

	// Base is the full definition used as the default configuration.
	Base Definition `json:"template"`

	// Options lists the fields a caller may override, in declaration order.
	Options []CustomizationOption `json:"customizationOptions"`

	// Metadata carries template provenance and usage information.
	Metadata TemplateMetadata `json:"templateMetadata"`
}

// CustomizationOption is one overridable field on a template.
type CustomizationOption struct {
	// ID identifies the option within its template.
	ID string `json:"id"`

	// Name is the human-readable field name used in validation messages.
	Name string `json:"name"`

	// Description explains what the option controls.
	Description string `json:"description"`

	// Type declares the expected value type.
	Type OptionType `json:"type"`

	// DefaultValue is used when the caller omits the option.
	// A nil default means the option has no default.
	DefaultValue any `json:"defaultValue,omitempty"`

	// Required marks the option as mandatory.
	Required bool `json:"required"`

	// Rules lists the validation rules evaluated against the effective value.
	Rules []ValidationRule `json:"validationRules,omitempty"`
}

// ValidationRule is a constraint attached to a customization option.
type ValidationRule struct {
	Type RuleType `json:"type"`

	Params RuleParams `json:"params"`

	// Message is returned verbatim when the rule is violated.
	Message string `json:"message"`
}

// RuleParams carries the rule parameters. Which field applies depends on the
// rule type and the option type: Length for min/max on strings, Value for
// min/max on numbers, Values for enum membership.
type RuleParams struct {
	Length *int     `json:"length,omitempty"`
	Value  *float64 `json:"value,omitempty"`
	Values []any    `json:"values,omitempty"`
}

// TemplateMetadata carries template provenance and usage information.
type TemplateMetadata struct {
	CreatedAt time.Time `json:"createdAt"`
	Author    string    `json:"author"`
	Version   string    `json:"version"`

	// UsageCount tracks how many times the template has been instantiated.
	UsageCount int `json:"usageCount"`

	// Rating is the average user rating, in [0,5].
	Rating float64 `json:"rating"`
}

var (
	// ErrTemplateIDRequired indicates the template id is missing.
	ErrTemplateIDRequired = errors.New("template id required")

	// ErrTemplateNameRequired indicates the template name is missing.
	ErrTemplateNameRequired = errors.New("template name required")

	// ErrOptionIDRequired indicates a customization option id is missing.
	ErrOptionIDRequired = errors.New("customization option id required")

	// ErrOptionIDDuplicate indicates two options of one template share an id.
	ErrOptionIDDuplicate = errors.New("customization option id duplicate")

	// ErrOptionTypeUnknown indicates a customization option declares an unknown type.
	ErrOptionTypeUnknown = errors.New("customization option type unknown")

	// ErrOptionDefaultRequired indicates a non-required option has no default value.
	ErrOptionDefaultRequired = errors.New("customization option default required")

	// ErrOptionDefaultMismatch indicates a default value does not conform to the declared option type.
	ErrOptionDefaultMismatch = errors.New("customization option default mismatch")

	// ErrRatingOutOfRange indicates the template rating is outside [0,5].
	ErrRatingOutOfRange = errors.New("template rating out of range")
)

// Validate checks the structural invariants of the template.
func (template Template) Validate() error {
	if template.ID == "" {
		return ErrTemplateIDRequired
	}

	if template.Name == "" {
		return ErrTemplateNameRequired
	}

	if !template.BaseRole.Known() {
		return ErrRoleUnknown
	}

	if err := template.Base.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(template.Options))
	for _, option := range template.Options {
		if err := option.Validate(); err != nil {
			return err
		}

		if seen[option.ID] {
			return ErrOptionIDDuplicate
		}
		seen[option.ID] = true
	}

	if template.Metadata.Rating < 0 || template.Metadata.Rating > 5 {
		return ErrRatingOutOfRange
	}

	return nil
}

// Validate checks the structural invariants of the option.
// A missing default is only legal for required options; optional options
// without a default would silently resolve to no value.
func (option CustomizationOption) Validate() error {
	if option.ID == "" {
		return ErrOptionIDRequired
	}

	if !option.Type.Known() {
		return ErrOptionTypeUnknown
	}

	if option.DefaultValue == nil && !option.Required {
		return ErrOptionDefaultRequired
	}

	if option.DefaultValue != nil && !option.Type.Matches(option.DefaultValue) {
		return ErrOptionDefaultMismatch
	}

	return nil
}

// Clone returns a deep copy of the template.
func (template Template) Clone() Template {
	clone := template
	clone.Base = template.Base.Clone()

	if template.Options != nil {
		options := make([]CustomizationOption, len(template.Options))
		for index, option := range template.Options {
			options[index] = option.Clone()
		}
		clone.Options = options
	}

	return clone
}

// Clone returns a deep copy of the option.
func (option CustomizationOption) Clone() CustomizationOption {
	clone := option
	clone.DefaultValue = CloneValue(option.DefaultValue)

	if option.Rules != nil {
		rules := make([]ValidationRule, len(option.Rules))
		for index, rule := range option.Rules {
			rules[index] = rule.Clone()
		}
		clone.Rules = rules
	}

	return clone
}

// Clone returns a deep copy of the rule.
func (rule ValidationRule) Clone() ValidationRule {
	clone := rule

	if rule.Params.Length != nil {
		length := *rule.Params.Length
		clone.Params.Length = &length
	}

	if rule.Params.Value != nil {
		value := *rule.Params.Value
		clone.Params.Value = &value
	}

	if rule.Params.Values != nil {
		values := make([]any, len(rule.Params.Values))
		for index, value := range rule.Params.Values {
			values[index] = CloneValue(value)
		}
		clone.Params.Values = values
	}

	return clone
}
