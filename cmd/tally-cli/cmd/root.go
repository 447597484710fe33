package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tally/internal/adapters/backend"
	"tally/internal/adapters/kvstate"
	"tally/internal/application"
	"tally/internal/config"
	"tally/internal/logging"
	"tally/internal/ports"
)

var (
	dataDir  string
	store    string
	logLevel string

	cfg    *config.Config
	logger *zap.Logger
	kv     ports.KeyValueStore
	ctrl   *application.Controller
)

var rootCmd = &cobra.Command{
	Use:   "tally-cli",
	Short: "CLI for managing tally counters",
	Long: `tally-cli is a command-line interface for the counters kept by tally.

It reads and writes the same store as the tally TUI, so counters can be
listed, added, adjusted, edited, reordered and deleted from scripts.

Counters are referenced by ID (counter-3), 1-based position, or exact name.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("data") {
			cfg.DataDir = dataDir
		}
		if cmd.Flags().Changed("store") {
			cfg.Store = store
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}

		if skipsStore(cmd) {
			return nil
		}

		kv, err = backend.Open(cfg, logger)
		if err != nil {
			return err
		}
		ctrl = application.NewController(context.Background(), kvstate.NewStore(kv), logger.Named("controller"))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		if kv == nil {
			return nil
		}
		return kv.Close()
	},
}

// skipsStore reports whether cmd works on configuration only
func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", config.DefaultDataDir(), "directory holding tally's data")
	rootCmd.PersistentFlags().StringVarP(&store, "store", "s", config.DefaultStore, "storage backend: sqlite, file or memory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log verbosity: debug, info, warn or error")
}

// GetController returns the initialized controller
func GetController() *application.Controller {
	return ctrl
}
