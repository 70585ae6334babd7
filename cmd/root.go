// Package cmd provides the CLI commands for Ticktock.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/espian/ticktock/internal/output"
	"github.com/espian/ticktock/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ticktock",
	Short: "Track countdowns to the days that matter",
	Long: `Ticktock tracks countdown events: a label, a target date, and the
days remaining until it arrives.

Examples:
  ticktock add "Birthday" December 25, 2025
  ticktock add Holiday tomorrow
  ticktock list
  ticktock view
  ticktock edit 3 --date "January 1, 2026"
  ticktock delete 3`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: list all countdowns.
		return runList(cmd, args)
	},
}

// printError reports a failure through the active format. JSON consumers
// get a Status document on stdout, never prose.
func printError(err error) {
	if ctx.IsJSON() {
		_ = ctx.JSONFormatter().PrintStatus(output.Status{OK: false, Message: err.Error()})
		return
	}
	ctx.CLIFormatter().PrintError(err)
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "cli", "Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Version = Version
}
