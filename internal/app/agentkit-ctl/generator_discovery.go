package agentkitctl

import (
	"fmt"
	"log/slog"

	"github.com/cli/safeexec"
)

// GeneratorExecutable is the external collaborator that turns a validated
// definition into filesystem artifacts. This tool only locates it.
const GeneratorExecutable = "agentkit-generate"

// GeneratorDiscoveryOutput reports where the generator was found, if at all.
type GeneratorDiscoveryOutput struct {
	Executable string `json:"executable"`
	Found      bool   `json:"found"`
	Path       string `json:"path,omitempty"`
}

// GeneratorDiscoveryCmd checks whether the external generator is on PATH.
type GeneratorDiscoveryCmd struct{}

// Run executes the generator discovery command.
func (command *GeneratorDiscoveryCmd) Run(renderer *Renderer) error {
	output := GeneratorDiscoveryOutput{
		Executable: GeneratorExecutable,
	}

	path, err := safeexec.LookPath(GeneratorExecutable)
	if err != nil {
		slog.Warn("Generator not found on PATH.", slog.String("executable", GeneratorExecutable))
	} else {
		output.Found = true
		output.Path = path
	}

	if err := renderer.Render(output); err != nil {
		return fmt.Errorf("render generator discovery output: %w", err)
	}

	return nil
}
