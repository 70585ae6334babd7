package cmd

import (
	"github.com/spf13/cobra"

	"github.com/espian/ticktock/internal/errors"
	"github.com/espian/ticktock/internal/output"
)

// deleteCmd removes a countdown.
var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a countdown",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		printError(err)
		return nil
	}

	n, err := ctx.Countdowns.Delete(id)
	if err != nil {
		printError(err)
		return err
	}
	if n == 0 {
		printError(errors.NewUserErrorWithField("id", args[0],
			"Failed to delete countdown",
			"Check the id with 'ticktock list'"))
		return nil
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(output.Status{OK: true, ID: id, Rows: n})
	}
	ctx.CLIFormatter().PrintMessage("Deleted countdown " + args[0])
	return nil
}
