package agentkitmcp

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/cli"
)

type Command struct {
	Log cli.LogConfig `embed:"" prefix:"log-"`
}

// Run serves the template and validation tools over stdio.
func (command *Command) Run(ctx context.Context, templateRegistry agent.TemplateRegistry, definitionRegistry agent.DefinitionRegistry) error {
	roles, err := templateRegistry.Roles(ctx)
	if err != nil {
		return fmt.Errorf("list template roles: %w", err)
	}

	tools := []mcpserver.ServerTool{
		createListTemplatesTool(templateRegistry),
		createGetTemplateTool(templateRegistry),
		createGetDefinitionTool(definitionRegistry),
	}

	for _, role := range roles {
		template, err := templateRegistry.Template(ctx, role)
		if err != nil {
			return fmt.Errorf("get template %s: %w", role, err)
		}

		tools = append(tools, createValidateTool(role, template))
	}

	server := mcpserver.NewMCPServer(
		"agentkit-mcp",
		"1.0.0",
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	server.AddTools(tools...)

	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}

	return nil
}
