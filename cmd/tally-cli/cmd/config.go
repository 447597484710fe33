package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tally/internal/adapters/backend"
	"tally/internal/adapters/editor"
	"tally/internal/config"
	"tally/internal/ports"
)

var configEditor ports.EditorOpener = editor.NewOpener()

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after applying the config file, environment
variables (TALLY_DATA, TALLY_STORE, TALLY_LOG_LEVEL) and flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Print(string(out))
		fmt.Printf("# data: %s\n", backend.Location(cfg))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Long: `Open the config file in $EDITOR, creating it with the current
settings first when it does not exist. The file is checked after the
editor exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := cfg.Save(path); err != nil {
				return err
			}
		}

		if err := configEditor.OpenFile(context.Background(), path); err != nil {
			return err
		}

		if _, err := config.LoadFrom(path); err != nil {
			return fmt.Errorf("config is invalid after editing: %w", err)
		}
		fmt.Printf("Saved %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}
