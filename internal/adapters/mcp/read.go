package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tally/internal/application/commands"
)

func (t *Tools) registerRead(s *server.MCPServer) {
	s.AddTool(listCountersTool(), t.handle("list_counters", listCountersHandler))
	s.AddTool(listListsTool(), t.handle("list_lists", listListsHandler))
}

// --- list_counters ---

func listCountersTool() mcp.Tool {
	return mcp.NewTool("list_counters",
		mcp.WithDescription("List the counters of the current list with their position, ID, value, reset value, steps and color."),
	)
}

func listCountersHandler(ctx context.Context, ctrl commands.Controller, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewListCountersCommand(ctrl).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(formatCounters(result.List)), nil
}

// --- list_lists ---

func listListsTool() mcp.Tool {
	return mcp.NewTool("list_lists",
		mcp.WithDescription("List every counter list. The current list is marked with *."),
	)
}

func listListsHandler(ctx context.Context, ctrl commands.Controller, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := commands.NewListListsCommand(ctrl).Execute(ctx)
	if err != nil {
		return toolError(err)
	}

	var sb strings.Builder
	for _, s := range summaries {
		sb.WriteString(formatList(s))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
