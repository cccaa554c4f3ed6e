package agentkitmcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
)

type templateSummary struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	BaseRole agent.Role `json:"baseRole"`
}

func createListTemplatesTool(registry agent.TemplateRegistry) mcpserver.ServerTool {
	tool := mcp.NewTool("list_templates",
		mcp.WithDescription("Lists every agent template role available for customization."),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		templates, err := registry.Templates(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		summaries := make([]templateSummary, 0, len(templates))
		for _, template := range templates {
			summaries = append(summaries, templateSummary{
				ID:       template.ID,
				Name:     template.Name,
				BaseRole: template.BaseRole,
			})
		}

		return mcp.NewToolResultStructured(summaries, fmt.Sprintf("%d templates available", len(summaries))), nil
	}

	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

func createGetTemplateTool(registry agent.TemplateRegistry) mcpserver.ServerTool {
	tool := mcp.NewTool("get_template",
		mcp.WithDescription("Returns the full template for a role, including its customization options and rules."),
		mcp.WithString("role",
			mcp.Description("Role whose template to return."),
			mcp.Required(),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		role, err := request.RequireString("role")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		template, err := registry.Template(ctx, agent.Role(role))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("get template %s: %s", role, err)), nil
		}

		return mcp.NewToolResultStructured(template, fmt.Sprintf("template %s", template.ID)), nil
	}

	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}

func createGetDefinitionTool(registry agent.DefinitionRegistry) mcpserver.ServerTool {
	tool := mcp.NewTool("get_definition",
		mcp.WithDescription("Returns the canonical agent definition for a predefined role."),
		mcp.WithString("role",
			mcp.Description("Predefined role whose definition to return."),
			mcp.Required(),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		role, err := request.RequireString("role")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		definition, err := registry.Definition(ctx, agent.Role(role))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("get definition %s: %s", role, err)), nil
		}

		return mcp.NewToolResultStructured(definition, fmt.Sprintf("definition %s", definition.ID)), nil
	}

	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
