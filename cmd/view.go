package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/espian/ticktock/internal/pager"
	"github.com/espian/ticktock/internal/tui"
)

// View flags.
var viewFlagRefresh bool

// viewCmd opens the interactive pager.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse countdowns interactively",
	Long: `Browse countdowns one page at a time, the way the pocket version of
this app flips between cards. Left/right to navigate, d to delete,
r to re-query, q to quit.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&viewFlagRefresh, "fresh-pages", false,
		"Rebuild a page on every visit instead of reusing it (picks up edits without a refresh)")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	policy := pager.ReuseCached
	if viewFlagRefresh {
		policy = pager.RefreshOnGet
	}

	m, err := tui.NewPagerModel(tui.PagerConfig{
		Repo:   ctx.Countdowns,
		Pool:   ctx.Pool,
		Policy: policy,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
