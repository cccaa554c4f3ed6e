package agentkitmcp

import (
	"context"
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/agent"
	"github.com/orbiqd/orbiqd-agentkit/internal/pkg/customize"
)

// createValidateTool builds one validation tool per template role so clients
// see the available roles directly in the tool listing.
func createValidateTool(role agent.Role, template agent.Template) mcpserver.ServerTool {
	toolName := fmt.Sprintf("validate_%s", strcase.ToSnake(string(role)))

	tool := mcp.NewTool(toolName,
		mcp.WithDescription(fmt.Sprintf("Validates customization overrides against the %s template and reports every violation found.", role)),
		mcp.WithObject("overrides",
			mcp.Description("Map of customization option ids to override values. Omitted options fall back to template defaults."),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments := request.GetArguments()

		overrides := map[string]any{}
		if raw, found := arguments["overrides"]; found && raw != nil {
			typed, ok := raw.(map[string]any)
			if !ok {
				return mcp.NewToolResultError("overrides must be an object"), nil
			}
			overrides = typed
		}

		result := customize.Validate(template, overrides)

		summary := "customization valid"
		if !result.Valid {
			summary = fmt.Sprintf("customization invalid: %d violations", len(result.Errors))
		}

		return mcp.NewToolResultStructured(result, summary), nil
	}

	return mcpserver.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
