package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var initCmd = &cobra.Command{
	Use:                "init",
	Short:              "Initialize the current directory as a repository",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpInit, args)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
