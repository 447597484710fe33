package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/application/commands"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the counters of the current list",
	Long: `List the counters of the current list in display order.

Examples:
  tally-cli list
  tally-cli list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewListCountersCommand(GetController()).Execute(ctx)
		if err != nil {
			return err
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.List)
		}

		fmt.Printf("%s\n", result.List.Name)
		for i, c := range result.List.Counters {
			fmt.Printf("%3d  %-12s %-24s %8d  (reset %d, +%d/-%d, %s)\n",
				i+1, c.ID, c.Name, c.Value, c.ResetValue, c.IncrementBy, c.DecrementBy, c.Color)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the list as JSON")
	rootCmd.AddCommand(listCmd)
}
