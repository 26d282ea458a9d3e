package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var commitCmd = &cobra.Command{
	Use:                "commit <file> [-m <message>]",
	Short:              "Record a tracked file's current content in a new version",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpCommit, args)
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
