package cmd

import (
	"context"
	"sync"

	"github.com/spf13/cobra"

	"github.com/espian/ticktock/internal/output"
	"github.com/espian/ticktock/internal/storage"
)

// listCmd lists all countdowns.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all countdowns",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// collectEntries queries matching rows and fills in days-remaining values
// through the compute pool, waiting for all deliveries.
func collectEntries(f storage.Filter) ([]output.Entry, error) {
	rows, err := ctx.Countdowns.Query(f)
	if err != nil {
		return nil, err
	}

	entries := make([]output.Entry, len(rows))
	var wg sync.WaitGroup
	for i, row := range rows {
		entries[i].Countdown = row

		target, err := row.TargetDate()
		if err != nil {
			// Malformed stored date: shown as-is, no days value.
			continue
		}

		wg.Add(1)
		e := &entries[i]
		ctx.Pool.Submit(context.Background(), target, func(days int) {
			e.Days = days
			e.HasDays = true
			wg.Done()
		})
	}
	wg.Wait()

	return entries, nil
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := collectEntries(storage.All())
	if err != nil {
		printError(err)
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintList(entries)
	}

	if len(entries) == 0 {
		ctx.CLIFormatter().PrintMessage("No countdowns yet. Add one with 'ticktock add'.")
		return nil
	}

	cli := ctx.CLIFormatter()
	for _, e := range entries {
		cli.PrintCountdown(e.Countdown, e.Days, e.HasDays)
	}
	return nil
}
