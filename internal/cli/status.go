package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compare the working directory against the active version",
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpStatus, args)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
