package agent

import (
	"math"
	"reflect"
)

// Matches reports whether the value conforms to the option type.
// Numbers accept any Go numeric kind but reject NaN; objects are non-nil,
// non-array maps or structs.
func (optionType OptionType) Matches(value any) bool {
	if value == nil {
		return false
	}

	switch optionType {
	case OptionString:
		_, ok := value.(string)
		return ok
	case OptionNumber:
		_, ok := NumberValue(value)
		return ok
	case OptionBoolean:
		_, ok := value.(bool)
		return ok
	case OptionArray:
		kind := reflect.ValueOf(value).Kind()
		return kind == reflect.Slice || kind == reflect.Array
	case OptionObject:
		kind := reflect.ValueOf(value).Kind()
		return kind == reflect.Map || kind == reflect.Struct
	default:
		return false
	}
}

// NumberValue converts the value to float64 when it is of a numeric kind.
// NaN is not treated as a number.
func NumberValue(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		if math.IsNaN(float64(typed)) {
			return 0, false
		}
		return float64(typed), true
	case float64:
		if math.IsNaN(typed) {
			return 0, false
		}
		return typed, true
	default:
		return 0, false
	}
}
