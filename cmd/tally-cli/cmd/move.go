package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tally/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <counter> <position>",
	Short: "Move a counter to a new position",
	Long: `Move a counter to a new 1-based position. Counters in between shift
by one.

Examples:
  tally-cli move Laps 1
  tally-cli move counter-4 3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		position, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("position must be an integer: %q", args[1])
		}

		result, err := commands.NewMoveCommand(GetController(), args[0], position).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
