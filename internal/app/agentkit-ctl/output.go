package agentkitctl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/yaml"
)

// Renderer writes command output in the format selected by the top-level
// --output flag.
type Renderer struct {
	Format string
	Writer io.Writer
}

// NewRenderer builds a renderer writing to stdout.
func NewRenderer(format string) *Renderer {
	return &Renderer{
		Format: format,
		Writer: os.Stdout,
	}
}

// Render writes the value as indented JSON or YAML.
func (renderer *Renderer) Render(value any) error {
	switch renderer.Format {
	case "yaml":
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}

		if _, err := renderer.Writer.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		return nil
	default:
		encoder := json.NewEncoder(renderer.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}

		return nil
	}
}
