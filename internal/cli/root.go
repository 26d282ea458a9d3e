// Package cli is the command dispatcher: it parses arguments in the
// legacy gvt form, runs engine operations and renders their results as
// exit codes and terminal output.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keshon/gvt/internal/config"
	"github.com/keshon/gvt/internal/logger"
	"github.com/keshon/gvt/internal/repo"
)

var rootCmd = &cobra.Command{
	Use:   "gvt",
	Short: "gvt is a minimal local version-control tool",
	Long: `gvt snapshots tracked files into numbered, immutable versions,
keeps a linear history and restores the working directory to any of them.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	// Unmatched names fall through to here. The uninitialized gate
	// outranks the unknown-command error.
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			exit(codeUsage, "Please specify command.")
			return
		}
		if !newRepository().Initialized() {
			exit(codeNotInitialized, repo.MsgNotInitialized)
			return
		}
		exit(codeUsage, fmt.Sprintf("Unknown command %s.", args[0]))
	},
}

var (
	cfg  *config.Config
	zlog *zap.Logger
)

// used to patch over calls to os.Exit() during test
var osExit = os.Exit

func init() {
	cobra.OnInitialize(initConfig)
}

// Execute parses os.Args and runs the matching command. Command names
// are matched case-insensitively, as the legacy tool did.
func Execute() {
	args := os.Args[1:]
	if len(args) > 0 {
		lowered := strings.ToLower(args[0])
		if c, _, err := rootCmd.Find([]string{lowered}); err == nil && c != rootCmd {
			args[0] = lowered
		}
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		exit(codeUsage, err.Error())
	}
}

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(codeSystemProblem)
		return
	}
	zlog, err = logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(codeSystemProblem)
	}
}

// newRepository builds the engine over the configured working directory.
func newRepository() *repo.Repository {
	fs := afero.NewOsFs()
	if cfg != nil && cfg.Workdir != "" {
		fs = afero.NewBasePathFs(fs, cfg.Workdir)
	}
	return repo.New(fs, zlog)
}

// run executes one engine operation and renders its result.
func run(op repo.Op, args []string) {
	res := newRepository().Apply(BuildCommand(op, args))
	exit(ExitCode(op, res.Err), res.Message)
}

// exit renders a result message, stdout on success and stderr
// otherwise, then terminates the process.
func exit(code int, msg string) {
	out := os.Stdout
	if code != codeOK {
		out = os.Stderr
	}
	if msg != "" {
		fmt.Fprintln(out, msg)
	}
	osExit(code)
}
