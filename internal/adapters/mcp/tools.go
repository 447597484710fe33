// Package mcp exposes counter operations as MCP tools
package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"tally/internal/application"
	"tally/internal/application/commands"
	"tally/internal/ports"
)

// Tools runs every tool call against freshly loaded state, one call at a
// time, so changes made by other tally processes between calls are seen.
type Tools struct {
	mu     sync.Mutex
	store  ports.StateStore
	logger *zap.Logger
}

// NewTools creates the tool set over store
func NewTools(store ports.StateStore, logger *zap.Logger) *Tools {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tools{store: store, logger: logger}
}

// Register adds every counter tool to the MCP server
func (t *Tools) Register(s *server.MCPServer) {
	t.registerRead(s)
	t.registerWrite(s)
}

// handlerFunc is a tool handler that receives a loaded controller
type handlerFunc func(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// handle serialises h and gives it a controller over the current state
func (t *Tools) handle(name string, h handlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		t.mu.Lock()
		defer t.mu.Unlock()

		t.logger.Debug("tool call", zap.String("tool", name))
		ctrl := application.NewController(ctx, t.store, t.logger)
		return h(ctx, ctrl, req)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatCounter(position int, c application.Counter) string {
	return fmt.Sprintf("%d. %s  [%s]  value=%d  reset=%d  +%d/-%d  %s",
		position, c.Name, c.ID, c.Value, c.ResetValue, c.IncrementBy, c.DecrementBy, c.Color)
}

func formatList(s commands.ListSummary) string {
	marker := " "
	if s.Current {
		marker = "*"
	}
	return fmt.Sprintf("%s %d. %s  [%s]  %d counters", marker, s.Position, s.Name, s.ID, s.Counters)
}

func formatCounters(list application.CounterList) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]\n", list.Name, list.ID)
	if len(list.Counters) == 0 {
		sb.WriteString("No counters.\n")
		return sb.String()
	}
	for i, c := range list.Counters {
		sb.WriteString(formatCounter(i+1, c))
		sb.WriteByte('\n')
	}
	return sb.String()
}
