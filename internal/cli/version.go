package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var versionCmd = &cobra.Command{
	Use:                "version [<version>]",
	Short:              "Show a version's number and full message",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpVersion, args)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
