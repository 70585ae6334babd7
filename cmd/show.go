package cmd

import (
	"github.com/spf13/cobra"

	"github.com/espian/ticktock/internal/errors"
	"github.com/espian/ticktock/internal/storage"
)

// showCmd shows a single countdown by id.
var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one countdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		printError(err)
		return nil
	}

	entries, err := collectEntries(storage.ByID(id))
	if err != nil {
		printError(err)
		return err
	}
	if len(entries) == 0 {
		printError(errors.NewUserErrorWithField("id", args[0],
			"Countdown not found", "Check the id with 'ticktock list'"))
		return nil
	}

	e := entries[0]
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCountdown(e.Countdown, e.Days, e.HasDays)
	}
	ctx.CLIFormatter().PrintCountdown(e.Countdown, e.Days, e.HasDays)
	return nil
}
