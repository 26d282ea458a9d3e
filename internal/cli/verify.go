package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit the repository's structural consistency",
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpVerify, args)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
