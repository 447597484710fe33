package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"tally/internal/adapters/backend"
	"tally/internal/adapters/kvstate"
	mcpadapter "tally/internal/adapters/mcp"
	"tally/internal/config"
	"tally/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("tally-mcp: %v", err)
	}

	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory holding tally's data")
	flag.StringVar(&cfg.Store, "store", cfg.Store, "storage backend: sqlite, file or memory")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("tally-mcp: %v", err)
	}

	// stdout carries the protocol, so logs go to stderr
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("tally-mcp: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	kv, err := backend.Open(cfg, logger)
	if err != nil {
		log.Fatalf("tally-mcp: %v", err)
	}
	defer kv.Close()

	mcpServer := server.NewMCPServer(
		"tally-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.NewTools(kvstate.NewStore(kv), logger.Named("mcp")).Register(mcpServer)

	logger.Info("serving MCP on stdio", zap.String("store", cfg.Store))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", zap.Error(err))
		log.Fatalf("tally-mcp: %v", err)
	}
}
