package cli

import (
	"github.com/spf13/cobra"

	"github.com/keshon/gvt/internal/repo"
)

var checkoutCmd = &cobra.Command{
	Use:                "checkout <version>",
	Short:              "Restore the working directory to a version",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(repo.OpCheckout, args)
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}
