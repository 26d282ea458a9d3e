// End-to-end command sequences: each step is one simulated invocation,
// checked against the exact exit code and rendered message.
package cli_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/gvt/internal/cli"
	"github.com/keshon/gvt/internal/repo"
)

type harness struct {
	t  *testing.T
	fs afero.Fs
	r  *repo.Repository
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fs := afero.NewMemMapFs()
	return &harness{t: t, fs: fs, r: repo.New(fs, nil)}
}

// invoke runs one operation the way a process invocation would.
func (h *harness) invoke(op repo.Op, args ...string) (int, string) {
	res := h.r.Apply(cli.BuildCommand(op, args))
	return cli.ExitCode(op, res.Err), res.Message
}

func (h *harness) write(name, content string) {
	h.t.Helper()
	require.NoError(h.t, afero.WriteFile(h.fs, name, []byte(content), 0o644))
}

func (h *harness) read(name string) string {
	h.t.Helper()
	data, err := afero.ReadFile(h.fs, name)
	require.NoError(h.t, err)
	return string(data)
}

func TestUninitializedInvocations(t *testing.T) {
	h := newHarness(t)

	for _, op := range []repo.Op{repo.OpAdd, repo.OpHistory, repo.OpCheckout} {
		code, msg := h.invoke(op)
		assert.Equal(t, -2, code, "op %s", op)
		assert.Equal(t, "Current directory is not initialized. Please use init command to initialize.", msg)
	}
}

func TestFullWorkflow(t *testing.T) {
	h := newHarness(t)

	code, msg := h.invoke(repo.OpInit)
	require.Equal(t, 0, code)
	assert.Equal(t, "Current directory initialized successfully.", msg)

	code, msg = h.invoke(repo.OpInit)
	assert.Equal(t, 10, code)
	assert.Equal(t, "Current directory is already initialized.", msg)

	h.write("a.txt", "X")
	code, msg = h.invoke(repo.OpAdd, "a.txt")
	require.Equal(t, 0, code)
	assert.Equal(t, "File added successfully. File: a.txt", msg)

	code, msg = h.invoke(repo.OpAdd, "a.txt", "-m", "again")
	assert.Equal(t, 0, code)
	assert.Equal(t, "File already added. File: a.txt", msg)

	h.write("a.txt", "Y")
	code, msg = h.invoke(repo.OpCommit, "a.txt", "-m", "switched to Y")
	require.Equal(t, 0, code)
	assert.Equal(t, "File committed successfully. File: a.txt", msg)

	code, msg = h.invoke(repo.OpHistory)
	require.Equal(t, 0, code)
	assert.Equal(t, "2: switched to Y\n1: File added successfully. File: a.txt\n0: GVT initialized.", msg)

	code, msg = h.invoke(repo.OpHistory, "-last", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "2: switched to Y", msg)

	code, msg = h.invoke(repo.OpVersion)
	require.Equal(t, 0, code)
	assert.Equal(t, "Version: 2\nswitched to Y", msg)

	code, msg = h.invoke(repo.OpCheckout, "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "Checkout successful for version: 1", msg)
	assert.Equal(t, "X", h.read("a.txt"))

	code, _ = h.invoke(repo.OpStatus)
	assert.Equal(t, 0, code)

	code, msg = h.invoke(repo.OpDetach, "a.txt")
	require.Equal(t, 0, code)
	assert.Equal(t, "File detached successfully. File: a.txt", msg)

	code, msg = h.invoke(repo.OpList, "3")
	require.Equal(t, 0, code)
	assert.Equal(t, "Version: 3\nNo files are tracked in this version.", msg)

	code, msg = h.invoke(repo.OpVerify)
	require.Equal(t, 0, code)
	assert.Equal(t, "Repository is consistent. Versions checked: 4.", msg)
}

func TestArgumentFailures(t *testing.T) {
	h := newHarness(t)
	code, _ := h.invoke(repo.OpInit)
	require.Equal(t, 0, code)

	code, msg := h.invoke(repo.OpAdd)
	assert.Equal(t, 20, code)
	assert.Equal(t, "Please specify file to add.", msg)

	// -m in first position means the file argument is missing
	code, msg = h.invoke(repo.OpAdd, "-m", "note")
	assert.Equal(t, 20, code)
	assert.Equal(t, "Please specify file to add.", msg)

	code, msg = h.invoke(repo.OpAdd, "ghost.txt")
	assert.Equal(t, 21, code)
	assert.Equal(t, "File not found. File: ghost.txt", msg)

	code, msg = h.invoke(repo.OpDetach, "-m")
	assert.Equal(t, 30, code)
	assert.Equal(t, "Please specify file to detach.", msg)

	code, msg = h.invoke(repo.OpCommit)
	assert.Equal(t, 50, code)
	assert.Equal(t, "Please specify file to commit.", msg)

	code, msg = h.invoke(repo.OpCheckout, "7")
	assert.Equal(t, 60, code)
	assert.Equal(t, "Invalid version number: 7", msg)

	code, msg = h.invoke(repo.OpCheckout)
	assert.Equal(t, 60, code)
	assert.Equal(t, "Invalid version number: ", msg)

	code, msg = h.invoke(repo.OpCheckout, "1", "2")
	assert.Equal(t, 60, code)
	assert.Equal(t, "Invalid version number: 1", msg)
}

func TestHistoryLastQuirks(t *testing.T) {
	h := newHarness(t)
	code, _ := h.invoke(repo.OpInit)
	require.Equal(t, 0, code)
	h.write("a.txt", "X")
	code, _ = h.invoke(repo.OpAdd, "a.txt")
	require.Equal(t, 0, code)

	// an unparseable limit is silently ignored
	code, msg := h.invoke(repo.OpHistory, "-last", "abc")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1: File added successfully. File: a.txt\n0: GVT initialized.", msg)

	// a non-positive limit yields no lines
	code, msg = h.invoke(repo.OpHistory, "-last", "0")
	assert.Equal(t, 0, code)
	assert.Empty(t, msg)

	// -last anywhere else is a no-op
	code, msg = h.invoke(repo.OpHistory, "x", "-last")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1: File added successfully. File: a.txt\n0: GVT initialized.", msg)
}
