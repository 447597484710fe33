package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <counter>",
	Short: "Delete a counter",
	Long: `Delete a counter from the current list. This cannot be undone.

Examples:
  tally-cli delete counter-3
  tally-cli delete Laps`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteCommand(GetController(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
