package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	agentkitctl "github.com/orbiqd/orbiqd-agentkit/internal/app/agentkit-ctl"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/catalog"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"
	fsstore "github.com/orbiqd/orbiqd-agentkit/internal/pkg/store/fs"
)

func main() {
	var command agentkitctl.Command

	kctx := kong.Parse(&command,
		kong.Name("agentkit-ctl"),
		kong.Description("Inspect agent templates and validate customizations."),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(cli.SetupDefaultLogger(command.Log))

	tool, err := cli.LoadToolConfig(command.Config)
	kctx.FatalIfErrorf(err)

	profileDir, err := cli.ResolveProfileDir(command.Store, tool)
	kctx.FatalIfErrorf(err)

	fileSystem := afero.NewOsFs()

	profiles, err := fsstore.NewProfileRepository(profileDir, fileSystem)
	kctx.FatalIfErrorf(err)

	definitions, err := catalog.NewDefinitionCatalog()
	kctx.FatalIfErrorf(err)

	templates, err := catalog.NewTemplateCatalog()
	kctx.FatalIfErrorf(err)

	ctx := context.Background()
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.BindTo(definitions, (*agent.DefinitionRegistry)(nil))
	kctx.BindTo(templates, (*agent.TemplateRegistry)(nil))
	kctx.BindTo(profiles, (*agent.ProfileRepository)(nil))
	kctx.BindTo(fileSystem, (*afero.Fs)(nil))
	kctx.Bind(tool)
	kctx.Bind(agentkitctl.NewRenderer(command.Output))

	kctx.FatalIfErrorf(kctx.Run())
}
