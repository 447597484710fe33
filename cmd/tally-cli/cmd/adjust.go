package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tally/internal/application/commands"
)

var incCmd = &cobra.Command{
	Use:   "inc <counter> [amount]",
	Short: "Increment a counter",
	Long: `Increment a counter by its own step, or by amount when given.

Examples:
  tally-cli inc counter-0
  tally-cli inc Laps 10`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdjust(args, false)
	},
}

var decCmd = &cobra.Command{
	Use:   "dec <counter> [amount]",
	Short: "Decrement a counter",
	Long: `Decrement a counter by its own step, or by amount when given.

Examples:
  tally-cli dec 2
  tally-cli dec Laps 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdjust(args, true)
	},
}

func runAdjust(args []string, decrement bool) error {
	var amount *int64
	if len(args) == 2 {
		n, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("amount must be an integer: %q", args[1])
		}
		amount = &n
	}

	result, err := commands.NewAdjustCommand(GetController(), args[0], amount, decrement).Execute(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(result.Message)
	return nil
}

func init() {
	rootCmd.AddCommand(incCmd)
	rootCmd.AddCommand(decCmd)
}
