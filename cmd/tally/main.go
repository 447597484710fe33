package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tally/internal/adapters/backend"
	"tally/internal/adapters/kvstate"
	"tally/internal/adapters/tui"
	"tally/internal/application"
	"tally/internal/config"
	"tally/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The screen belongs to the TUI, so logs go to a file
	logger, err := logging.NewFile(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	kv, err := backend.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	logger.Info("starting tally",
		zap.String("store", cfg.Store),
		zap.String("location", backend.Location(cfg)),
	)

	ctrl := application.NewController(context.Background(), kvstate.NewStore(kv), logger.Named("controller"))
	app := tui.NewApp(ctrl, logger.Named("tui"))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
