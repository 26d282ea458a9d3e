package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var listCmd = &cobra.Command{
	Use:                "list [<version>]",
	Short:              "List the files tracked by a version",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpList, args)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
