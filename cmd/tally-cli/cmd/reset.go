package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/application/commands"
)

var resetCmd = &cobra.Command{
	Use:   "reset <counter>",
	Short: "Set a counter back to its reset value",
	Long: `Set a counter's value back to its reset value.

Examples:
  tally-cli reset counter-0
  tally-cli reset Laps`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewResetCommand(GetController(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
