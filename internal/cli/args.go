package cli

import (
	"strconv"

	"github.com/keshon/gvt/internal/repo"
)

// The legacy argument quirks are not expressible with pflag, so the
// contract commands disable cobra flag parsing and use these helpers.

// BuildCommand parses raw arguments into an engine command for op.
func BuildCommand(op repo.Op, args []string) repo.Command {
	cmd := repo.Command{Op: op, NArgs: len(args)}
	switch op {
	case repo.OpAdd, repo.OpDetach, repo.OpCommit:
		cmd.File = fileArg(args)
		cmd.Message = messageArg(args)
	case repo.OpCheckout, repo.OpVersion, repo.OpList:
		cmd.Version = versionArg(args)
	case repo.OpHistory:
		cmd.Last, cmd.HasLast = lastArg(args)
	}
	return cmd
}

// fileArg returns the file positional. A leading -m means the file
// argument is missing.
func fileArg(args []string) string {
	if len(args) == 0 || args[0] == "-m" {
		return ""
	}
	return args[0]
}

// messageArg returns the user commit message. The first -m that has a
// value following it wins; a trailing -m without a value is ignored.
func messageArg(args []string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "-m" {
			return args[i+1]
		}
	}
	return ""
}

// versionArg returns the raw version argument, empty when absent.
func versionArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// lastArg parses history's -last limit. It is honored only as the first
// argument; an unparseable value selects the full history.
func lastArg(args []string) (int, bool) {
	if len(args) >= 2 && args[0] == "-last" {
		if n, err := strconv.Atoi(args[1]); err == nil {
			return n, true
		}
	}
	return 0, false
}
