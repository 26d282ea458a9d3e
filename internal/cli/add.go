package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var addCmd = &cobra.Command{
	Use:                "add <file> [-m <message>]",
	Short:              "Start tracking a file in a new version",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpAdd, args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
