package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/espian/ticktock/internal/model"
	"github.com/espian/ticktock/internal/output"
	"github.com/espian/ticktock/internal/parser"
	"github.com/espian/ticktock/internal/validate"
)

// addCmd creates a new countdown.
var addCmd = &cobra.Command{
	Use:   "add LABEL DATE...",
	Short: "Add a new countdown",
	Long: `Add a countdown with a label and a target date.

The date may be exact or natural language:
  ticktock add "Birthday" December 25, 2025
  ticktock add Launch in 3 weeks
  ticktock add Holiday next friday`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	label := args[0]
	if err := validate.Label(label); err != nil {
		printError(err)
		return nil
	}

	now := time.Now()
	target, err := parser.ParseTargetDate(strings.Join(args[1:], " "), now)
	if err != nil {
		printError(err)
		return nil
	}
	if err := validate.TargetDate(now, target); err != nil {
		printError(err)
		return nil
	}

	id, err := ctx.Countdowns.Create(label, model.FormatDate(target))
	if err != nil {
		printError(err)
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(output.Status{OK: true, ID: id})
	}
	ctx.CLIFormatter().PrintMessage(fmt.Sprintf("Added countdown %d", id))
	return nil
}
