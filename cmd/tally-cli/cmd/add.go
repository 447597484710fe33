package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/application/commands"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Append a counter to the current list",
	Long: `Append a counter to the current list. It starts at 0, steps by 1 and
is colored primary. Without a name it is called "Counter N".

Examples:
  tally-cli add
  tally-cli add "Push-ups"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		result, err := commands.NewAddCommand(GetController(), name).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
