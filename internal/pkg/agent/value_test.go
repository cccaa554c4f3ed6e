package agent

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionTypeMatches(t *testing.T) {
	tests := []struct {
		name       string
		optionType OptionType
		value      any
		want       bool
	}{
		{"string", OptionString, "text", true},
		{"string rejects number", OptionString, 1, false},
		{"number int", OptionNumber, 42, true},
		{"number float", OptionNumber, 4.2, true},
		{"number rejects NaN", OptionNumber, math.NaN(), false},
		{"number rejects string", OptionNumber, "42", false},
		{"boolean", OptionBoolean, true, true},
		{"boolean rejects number", OptionBoolean, 1, false},
		{"array of any", OptionArray, []any{1, 2}, true},
		{"array of strings", OptionArray, []string{"a"}, true},
		{"array rejects map", OptionArray, map[string]any{}, false},
		{"object map", OptionObject, map[string]any{"k": "v"}, true},
		{"object struct", OptionObject, struct{ Name string }{"x"}, true},
		{"object rejects array", OptionObject, []any{1}, false},
		{"object rejects string", OptionObject, "{}", false},
		{"nil never matches", OptionString, nil, false},
		{"unknown type never matches", OptionType("tuple"), "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.optionType.Matches(tt.value))
		})
	}
}

func TestNumberValue(t *testing.T) {
	t.Run("integer kinds", func(t *testing.T) {
		for _, value := range []any{int(7), int8(7), int16(7), int32(7), int64(7), uint(7), uint8(7), uint16(7), uint32(7), uint64(7)} {
			number, ok := NumberValue(value)
			assert.True(t, ok)
			assert.Equal(t, 7.0, number)
		}
	})

	t.Run("float kinds", func(t *testing.T) {
		number, ok := NumberValue(float32(1.5))
		assert.True(t, ok)
		assert.Equal(t, 1.5, number)

		number, ok = NumberValue(2.5)
		assert.True(t, ok)
		assert.Equal(t, 2.5, number)
	})

	t.Run("NaN is not a number", func(t *testing.T) {
		_, ok := NumberValue(math.NaN())
		assert.False(t, ok)
	})

	t.Run("non-numeric", func(t *testing.T) {
		_, ok := NumberValue("7")
		assert.False(t, ok)

		_, ok = NumberValue(nil)
		assert.False(t, ok)
	})
}
