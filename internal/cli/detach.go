package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var detachCmd = &cobra.Command{
	Use:                "detach <file> [-m <message>]",
	Short:              "Stop tracking a file in a new version",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpDetach, args)
	},
}

func init() {
	rootCmd.AddCommand(detachCmd)
}
