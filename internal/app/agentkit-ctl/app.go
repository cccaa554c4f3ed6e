package agentkitctl

import "github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"

type Command struct {
	Log    cli.LogConfig   `embed:"" prefix:"log-"`
	Store  cli.StoreConfig `embed:"" prefix:"store-"`
	Config string          `help:"Path to the tool configuration file" type:"path"`
	Output string          `help:"Output format" default:"json" enum:"json,yaml"`

	Template   TemplateCmd   `cmd:"" help:"Inspect agent templates"`
	Definition DefinitionCmd `cmd:"" help:"Inspect canonical agent definitions"`
	Validate   ValidateCmd   `cmd:"" help:"Validate customization overrides against a role template"`
	Apply      ApplyCmd      `cmd:"" help:"Validate overrides and render the customized definition"`
	Profile    ProfileCmd    `cmd:"" help:"Manage stored customization profiles"`
	Generator  GeneratorCmd  `cmd:"" help:"Inspect the external generator tooling"`
}

type TemplateCmd struct {
	List TemplateListCmd `cmd:"" help:"List available templates"`
	Show TemplateShowCmd `cmd:"" help:"Show the template for a role"`
}

type DefinitionCmd struct {
	List DefinitionListCmd `cmd:"" help:"List canonical definitions"`
	Show DefinitionShowCmd `cmd:"" help:"Show the canonical definition for a role"`
}

type ProfileCmd struct {
	Add    ProfileAddCmd    `cmd:"" help:"Save a customization profile"`
	List   ProfileListCmd   `cmd:"" help:"List stored profiles"`
	Show   ProfileShowCmd   `cmd:"" help:"Show a stored profile"`
	Remove ProfileRemoveCmd `cmd:"" help:"Delete a stored profile"`
}

type GeneratorCmd struct {
	Discovery GeneratorDiscoveryCmd `cmd:"" help:"Check whether the external generator is installed"`
}
