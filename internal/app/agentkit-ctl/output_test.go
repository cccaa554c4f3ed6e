package agentkitctl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererRender(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("json is the default and is indented", func(t *testing.T) {
		var buffer bytes.Buffer
		renderer := &Renderer{Format: "json", Writer: &buffer}

		require.NoError(t, renderer.Render(payload{Name: "architect", Count: 2}))

		assert.Equal(t, "{\n  \"name\": \"architect\",\n  \"count\": 2\n}\n", buffer.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buffer bytes.Buffer
		renderer := &Renderer{Format: "yaml", Writer: &buffer}

		require.NoError(t, renderer.Render(payload{Name: "architect", Count: 2}))

		assert.Equal(t, "count: 2\nname: architect\n", buffer.String())
	})

	t.Run("unknown format falls back to json", func(t *testing.T) {
		var buffer bytes.Buffer
		renderer := &Renderer{Format: "toml", Writer: &buffer}

		require.NoError(t, renderer.Render(map[string]string{"key": "value"}))

		assert.Contains(t, buffer.String(), "\"key\": \"value\"")
	})
}
