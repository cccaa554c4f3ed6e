package main

import (
	"context"

	"github.com/alecthomas/kong"

	agentkitmcp "github.com/orbiqd/orbiqd-agentkit/internal/app/agentkit-mcp"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/catalog"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"
)

func main() {
	var command agentkitmcp.Command

	kctx := kong.Parse(&command,
		kong.Name("agentkit-mcp"),
		kong.Description("Serve agent template lookup and validation tools over MCP stdio."),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(cli.SetupDefaultLogger(command.Log))

	definitions, err := catalog.NewDefinitionCatalog()
	kctx.FatalIfErrorf(err)

	templates, err := catalog.NewTemplateCatalog()
	kctx.FatalIfErrorf(err)

	ctx := context.Background()
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.BindTo(definitions, (*agent.DefinitionRegistry)(nil))
	kctx.BindTo(templates, (*agent.TemplateRegistry)(nil))

	kctx.FatalIfErrorf(kctx.Run())
}
