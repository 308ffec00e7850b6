package cmd

import (
	"github.com/huangsam/gitroast/core"
	"github.com/spf13/cobra"
)

// topCmd ranks the most entertaining recent commits.
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Rank the most entertaining recent commits.",
	Long: `Rate each of the most recent commits reachable from HEAD and list the best ones.

Commits are rated one at a time in history order. Ties keep history order, so
the more recent commit wins.`,
	Example: `  gitroast top
  gitroast top --count 500 --limit 5 --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE:    executeWith(core.ExecuteRoastTop),
}
