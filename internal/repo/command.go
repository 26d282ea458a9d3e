package repo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/keshon/gvt/internal/repo/status"
)

// Op names an engine operation.
type Op string

const (
	OpInit     Op = "init"
	OpAdd      Op = "add"
	OpDetach   Op = "detach"
	OpCommit   Op = "commit"
	OpCheckout Op = "checkout"
	OpHistory  Op = "history"
	OpVersion  Op = "version"
	OpStatus   Op = "status"
	OpVerify   Op = "verify"
	OpList     Op = "list"
)

// Command is one parsed operation. Fields are populated per Op: the
// dispatcher owns argument extraction, the engine owns semantics.
type Command struct {
	Op      Op
	File    string // add/detach/commit; empty when the argument is missing
	Message string // user commit message; empty selects the generated default
	Version string // checkout/version/list; raw user text, empty when absent
	NArgs   int    // positional argument count as seen by the dispatcher
	Last    int    // history line limit
	HasLast bool   // history: -last was given with a parseable value
}

// Result is the outcome the dispatcher renders. A nil Err means success,
// including the documented no-op successes of add, detach and commit.
type Result struct {
	Err     error
	Message string
}

// Result messages shared across operations.
const (
	MsgNotInitialized = "Current directory is not initialized. Please use init command to initialize."
	MsgSystemProblem  = "Underlying system problem. See ERR for details."
	MsgCorrupt        = "Repository is corrupted. See ERR for details."
)

func ok(msg string) Result {
	return Result{Message: msg}
}

func fail(err error, msg string) Result {
	return Result{Err: err, Message: msg}
}

// Apply runs one command against the repository state. Every operation
// except init is gated on the repository being initialized, unknown
// operations included.
func (r *Repository) Apply(cmd Command) Result {
	if cmd.Op != OpInit && !r.store.Initialized() {
		return fail(status.ErrNotInitialized, MsgNotInitialized)
	}
	switch cmd.Op {
	case OpInit:
		return r.init()
	case OpAdd:
		return r.add(cmd)
	case OpDetach:
		return r.detach(cmd)
	case OpCommit:
		return r.commit(cmd)
	case OpCheckout:
		return r.checkout(cmd)
	case OpHistory:
		return r.history(cmd)
	case OpVersion:
		return r.version(cmd)
	case OpStatus:
		return r.statusReport()
	case OpVerify:
		return r.verify()
	case OpList:
		return r.list(cmd)
	default:
		return fail(fmt.Errorf("unknown operation %q", cmd.Op), fmt.Sprintf("Unknown command %s.", cmd.Op))
	}
}

// corrupt reports an unreadable counter. The underlying detail goes to
// the logger, the user gets the one-line result.
func (r *Repository) corrupt(err error) Result {
	r.log.Error("repository counters unreadable", zap.Error(err))
	return fail(err, MsgCorrupt)
}
