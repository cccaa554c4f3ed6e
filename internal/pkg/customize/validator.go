// Package customize merges caller-supplied overrides onto template defaults
// and checks the result against the template's per-field rules.
package customize

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

// Result aggregates the outcome of validating one override map against one
// template. Every violation found is collected; nothing short-circuits.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks the caller-supplied overrides against the template's
// customization options.
//
// For each option the effective value is the caller's value when the key is
// present in the overrides map, otherwise the option default. A key present
// with a nil value is a deliberate "no value" signal and is not replaced by
// the default. Keys absent from the template's options are ignored. Neither
// input is mutated.
func Validate(template agent.Template, overrides map[string]any) Result {
	var violations []string

	for _, option := range template.Options {
		value, provided := overrides[option.ID]
		if !provided {
			value = option.DefaultValue
		}

		if option.Required {
			switch {
			case provided && value == nil:
				violations = append(violations, fmt.Sprintf("%s cannot be null", option.Name))
			case value == nil, value == "":
				violations = append(violations, fmt.Sprintf("%s is required", option.Name))
			}
		}

		if value == nil {
			continue
		}

		if !option.Type.Matches(value) {
			violations = append(violations, fmt.Sprintf("%s must be a %s", option.Name, option.Type))
			continue
		}

		for _, rule := range option.Rules {
			if ruleViolated(rule, value) {
				violations = append(violations, rule.Message)
			}
		}
	}

	return Result{
		Valid:  len(violations) == 0,
		Errors: violations,
	}
}

// ruleViolated evaluates a single rule against a type-checked value.
// Unknown rule types never violate; the rule set is extensible and a
// template carrying a newer rule type must not fail older validators.
func ruleViolated(rule agent.ValidationRule, value any) bool {
	switch rule.Type {
	case agent.RuleMin:
		if text, ok := value.(string); ok && rule.Params.Length != nil {
			return utf8.RuneCountInString(text) < *rule.Params.Length
		}
		if number, ok := agent.NumberValue(value); ok && rule.Params.Value != nil {
			return number < *rule.Params.Value
		}
		return false
	case agent.RuleMax:
		if text, ok := value.(string); ok && rule.Params.Length != nil {
			return utf8.RuneCountInString(text) > *rule.Params.Length
		}
		if number, ok := agent.NumberValue(value); ok && rule.Params.Value != nil {
			return number > *rule.Params.Value
		}
		return false
	case agent.RuleEnum:
		for _, allowed := range rule.Params.Values {
			if valuesEqual(allowed, value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// valuesEqual compares an enum member against a candidate value. Numbers of
// different Go kinds compare by numeric value; string comparison is
// case-sensitive.
func valuesEqual(allowed, value any) bool {
	allowedNumber, allowedOK := agent.NumberValue(allowed)
	valueNumber, valueOK := agent.NumberValue(value)
	if allowedOK && valueOK {
		return allowedNumber == valueNumber
	}

	return reflect.DeepEqual(allowed, value)
}
