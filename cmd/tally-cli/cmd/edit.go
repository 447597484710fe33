package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/application"
	"tally/internal/application/commands"
)

var editColor string

// editFlags maps flag names to the form fields they fill
var editFlags = []struct {
	name  string
	field application.Field
	usage string
}{
	{"name", application.FieldName, "new name"},
	{"value", application.FieldValue, "new value"},
	{"reset-value", application.FieldResetValue, "value used by reset"},
	{"increment-by", application.FieldIncrementBy, "step added on increment"},
	{"decrement-by", application.FieldDecrementBy, "step subtracted on decrement"},
}

var editCmd = &cobra.Command{
	Use:   "edit <counter>",
	Short: "Change a counter's fields",
	Long: `Change any of a counter's fields. Fields without a flag keep their
value. Nothing is saved unless every given field is valid.

Examples:
  tally-cli edit Laps --name "Long laps" --increment-by 2
  tally-cli edit counter-0 --value 10 --color success`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var form application.EditForm
		for _, f := range editFlags {
			if cmd.Flags().Changed(f.name) {
				raw, _ := cmd.Flags().GetString(f.name)
				form.Set(f.field, raw)
			}
		}

		result, err := commands.NewEditCommand(GetController(), args[0], form, editColor).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	for _, f := range editFlags {
		editCmd.Flags().String(f.name, "", f.usage)
	}
	editCmd.Flags().StringVar(&editColor, "color", "", "primary, secondary, success, warning, error or info")
	rootCmd.AddCommand(editCmd)
}
