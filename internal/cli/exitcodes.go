package cli

import (
	"errors"

	"github.com/keshon/gvt/internal/repo"
	"github.com/keshon/gvt/internal/repo/status"
)

// Exit codes mirror the legacy gvt tool. The failure code of a given
// error kind depends on the operation that hit it.
const (
	codeOK                 = 0
	codeUsage              = 1
	codeNotInitialized     = -2
	codeSystemProblem      = -3
	codeCorruptRepository  = -4
	codeAlreadyInitialized = 10
	codeAddNoFile          = 20
	codeAddFileMissing     = 21
	codeAddIO              = 22
	codeDetachNoFile       = 30
	codeDetachIO           = 31
	codeCommitNoFile       = 50
	codeCommitFileMissing  = 51
	codeCommitIO           = 52
	codeInvalidVersion     = 60
)

// ExitCode maps an engine result to the operation's process exit code.
func ExitCode(op repo.Op, err error) int {
	if err == nil {
		return codeOK
	}
	switch {
	case errors.Is(err, status.ErrNotInitialized):
		return codeNotInitialized
	case errors.Is(err, status.ErrAlreadyInitialized):
		return codeAlreadyInitialized
	case errors.Is(err, status.ErrCorruptRepository):
		return codeCorruptRepository
	case errors.Is(err, status.ErrInvalidVersion):
		return codeInvalidVersion
	case errors.Is(err, status.ErrNoFileSpecified):
		switch op {
		case repo.OpAdd:
			return codeAddNoFile
		case repo.OpDetach:
			return codeDetachNoFile
		case repo.OpCommit:
			return codeCommitNoFile
		}
	case errors.Is(err, status.ErrFileNotFound):
		switch op {
		case repo.OpAdd:
			return codeAddFileMissing
		case repo.OpCommit:
			return codeCommitFileMissing
		}
	}

	// Anything else is an I/O failure of the operation itself.
	switch op {
	case repo.OpAdd:
		return codeAddIO
	case repo.OpDetach:
		return codeDetachIO
	case repo.OpCommit:
		return codeCommitIO
	}
	return codeSystemProblem
}
