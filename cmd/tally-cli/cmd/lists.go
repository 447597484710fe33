package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/application/commands"
)

var listsJSON bool

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show and manage counter lists",
	Long: `Show every counter list, or manage them with a subcommand.
The current list is marked with *.

Examples:
  tally-cli lists
  tally-cli lists add Gym
  tally-cli lists use Gym
  tally-cli lists rename 2 "Gym 2026"
  tally-cli lists delete Gym`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := commands.NewListListsCommand(GetController()).Execute(context.Background())
		if err != nil {
			return err
		}

		if listsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summaries)
		}

		for _, s := range summaries {
			marker := " "
			if s.Current {
				marker = "*"
			}
			fmt.Printf("%s %d  %-18s %s (%d counters)\n", marker, s.Position, s.ID, s.Name, s.Counters)
		}
		return nil
	},
}

var listsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a list and make it current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddListCommand(GetController(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var listsUseCmd = &cobra.Command{
	Use:   "use <list>",
	Short: "Make a list current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewSelectListCommand(GetController(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var listsRenameCmd = &cobra.Command{
	Use:   "rename <list> <new-name>",
	Short: "Rename a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRenameListCommand(GetController(), args[0], args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var listsDeleteCmd = &cobra.Command{
	Use:   "delete <list>",
	Short: "Delete a list and its counters",
	Long: `Delete a list and every counter in it. The last remaining list
cannot be deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteListCommand(GetController(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	listsCmd.Flags().BoolVar(&listsJSON, "json", false, "print the lists as JSON")
	rootCmd.AddCommand(listsCmd)
	listsCmd.AddCommand(listsAddCmd)
	listsCmd.AddCommand(listsUseCmd)
	listsCmd.AddCommand(listsRenameCmd)
	listsCmd.AddCommand(listsDeleteCmd)
}
