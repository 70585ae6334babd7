package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/espian/ticktock/internal/errors"
	"github.com/espian/ticktock/internal/model"
	"github.com/espian/ticktock/internal/output"
	"github.com/espian/ticktock/internal/parser"
	"github.com/espian/ticktock/internal/validate"
)

// Edit flags.
var (
	editFlagLabel string
	editFlagDate  string
)

// editCmd rewrites an existing countdown.
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a countdown",
	Long: `Edit the label or target date of an existing countdown.

Examples:
  ticktock edit 3 --label "Birthday Party"
  ticktock edit 3 --date "December 26, 2025"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editFlagLabel, "label", "l", "", "New label")
	editCmd.Flags().StringVarP(&editFlagDate, "date", "d", "", "New target date")
	rootCmd.AddCommand(editCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewUserErrorWithField("id", arg,
			"Invalid countdown id",
			"Use the numeric id shown by 'ticktock list'")
	}
	return id, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		printError(err)
		return nil
	}

	if editFlagLabel == "" && editFlagDate == "" {
		printError(errors.NewUserError(
			"Nothing to change", "Pass --label, --date or both"))
		return nil
	}

	current, err := ctx.Countdowns.Get(id)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			printError(errors.NewUserErrorWithField("id", args[0],
				"Countdown not found", "Check the id with 'ticktock list'"))
			return nil
		}
		return err
	}

	label := current.Label
	if editFlagLabel != "" {
		label = editFlagLabel
	}
	if err := validate.Label(label); err != nil {
		printError(err)
		return nil
	}

	dateText := current.Date
	if editFlagDate != "" {
		now := time.Now()
		target, err := parser.ParseTargetDate(editFlagDate, now)
		if err != nil {
			printError(err)
			return nil
		}
		if err := validate.TargetDate(now, target); err != nil {
			printError(err)
			return nil
		}
		dateText = model.FormatDate(target)
	}

	n, err := ctx.Countdowns.Update(id, label, dateText)
	if err != nil {
		printError(err)
		return err
	}
	if n == 0 {
		// The row vanished between Get and Update. Report, don't retry.
		printError(errors.NewUserError(
			fmt.Sprintf("Failed to update '%s'", label),
			"The countdown no longer exists"))
		return nil
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(output.Status{OK: true, ID: id, Rows: n})
	}
	ctx.CLIFormatter().PrintMessage("Updated countdown " + args[0])
	return nil
}
