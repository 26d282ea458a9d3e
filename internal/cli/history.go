package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var historyCmd = &cobra.Command{
	Use:                "history [-last <n>]",
	Short:              "List versions newest first",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpHistory, args)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
