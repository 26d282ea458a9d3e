package repo

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/docker/go-units"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/keshon/gvt/internal/config"
	"github.com/keshon/gvt/internal/repo/status"
	"github.com/keshon/gvt/internal/util"
)

func (r *Repository) history(cmd Command) Result {
	latest, err := r.store.LatestVersion()
	if err != nil {
		return r.corrupt(err)
	}

	limit := latest + 1
	if cmd.HasLast {
		limit = cmd.Last
	}

	var b strings.Builder
	for i := latest; i >= 0 && latest-i < limit; i-- {
		line, err := r.store.MessageFirstLine(i)
		if err != nil {
			r.log.Error("history failed", zap.Int("version", i), zap.Error(err))
			return fail(err, MsgSystemProblem)
		}
		fmt.Fprintf(&b, "%d: %s\n", i, line)
	}
	return ok(strings.TrimSuffix(b.String(), "\n"))
}

func (r *Repository) version(cmd Command) Result {
	n, res := r.resolveVersion(cmd)
	if res != nil {
		return *res
	}
	msg, err := r.store.Message(n)
	if err != nil {
		r.log.Error("version failed", zap.Int("version", n), zap.Error(err))
		return fail(err, MsgSystemProblem)
	}
	return ok(fmt.Sprintf("Version: %d\n%s", n, msg))
}

func (r *Repository) list(cmd Command) Result {
	n, res := r.resolveVersion(cmd)
	if res != nil {
		return *res
	}
	names, err := r.store.ListTrackedFiles(n)
	if err != nil {
		r.log.Error("list failed", zap.Int("version", n), zap.Error(err))
		return fail(err, MsgSystemProblem)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Version: %d", n)
	if len(names) == 0 {
		b.WriteString("\nNo files are tracked in this version.")
		return ok(b.String())
	}
	for _, name := range names {
		data, err := r.store.ReadFile(n, name)
		if err != nil {
			r.log.Error("list failed", zap.String("file", name), zap.Error(err))
			return fail(err, MsgSystemProblem)
		}
		fmt.Fprintf(&b, "\n  %s (%s)", name, units.HumanSize(float64(len(data))))
	}
	return ok(b.String())
}

// resolveVersion picks the version the command names, defaulting to the
// active one. A non-nil Result is the error to return as-is.
func (r *Repository) resolveVersion(cmd Command) (int, *Result) {
	latest, err := r.store.LatestVersion()
	if err != nil {
		res := r.corrupt(err)
		return 0, &res
	}

	var n int
	if cmd.NArgs > 0 {
		n, err = strconv.Atoi(cmd.Version)
		if err != nil {
			res := fail(status.ErrInvalidVersion, "Invalid version number: "+cmd.Version)
			return 0, &res
		}
	} else {
		n, err = r.store.ActiveVersion()
		if err != nil {
			res := r.corrupt(err)
			return 0, &res
		}
	}

	if n < 0 || n > latest {
		res := fail(status.ErrInvalidVersion, fmt.Sprintf("Invalid version number: %d", n))
		return 0, &res
	}
	return n, nil
}

func (r *Repository) statusReport() Result {
	active, err := r.store.ActiveVersion()
	if err != nil {
		return r.corrupt(err)
	}
	tracked, err := r.store.ListTrackedFiles(active)
	if err != nil {
		r.log.Error("status failed", zap.Int("version", active), zap.Error(err))
		return fail(err, MsgSystemProblem)
	}

	var modified, missing []string
	trackedSet := make(map[string]struct{}, len(tracked))
	for _, name := range tracked {
		trackedSet[name] = struct{}{}
		exists, _ := afero.Exists(r.fs, name)
		if !exists {
			missing = append(missing, name)
			continue
		}
		work, err := afero.ReadFile(r.fs, name)
		if err != nil {
			r.log.Error("status failed", zap.String("file", name), zap.Error(err))
			return fail(err, MsgSystemProblem)
		}
		stored, err := r.store.ReadFile(active, name)
		if err != nil {
			r.log.Error("status failed", zap.String("file", name), zap.Error(err))
			return fail(err, MsgSystemProblem)
		}
		if !bytes.Equal(work, stored) {
			modified = append(modified, name)
		}
	}

	infos, err := afero.ReadDir(r.fs, ".")
	if err != nil {
		r.log.Error("status failed", zap.Error(err))
		return fail(err, MsgSystemProblem)
	}
	untrackedSet := make(map[string]struct{})
	for _, fi := range infos {
		if fi.IsDir() || fi.Name() == config.StorageDir {
			continue
		}
		if _, found := trackedSet[fi.Name()]; found {
			continue
		}
		untrackedSet[fi.Name()] = struct{}{}
	}
	untracked := util.SortedKeys(untrackedSet)

	var b strings.Builder
	fmt.Fprintf(&b, "Active version: %d", active)
	for _, name := range modified {
		fmt.Fprintf(&b, "\n  modified: %s", name)
	}
	for _, name := range missing {
		fmt.Fprintf(&b, "\n  missing: %s", name)
	}
	for _, name := range untracked {
		fmt.Fprintf(&b, "\n  untracked: %s", name)
	}
	if len(modified)+len(missing)+len(untracked) == 0 {
		b.WriteString("\nWorking directory matches the active version.")
	}
	return ok(b.String())
}

func (r *Repository) verify() Result {
	var issues []string

	latest, lerr := r.store.LatestVersion()
	if lerr != nil {
		issues = append(issues, "latest version counter is unreadable")
	}
	active, aerr := r.store.ActiveVersion()
	if aerr != nil {
		issues = append(issues, "active version counter is unreadable")
	}
	if lerr == nil && aerr == nil && active > latest {
		issues = append(issues, fmt.Sprintf("active version %d is ahead of latest version %d", active, latest))
	}

	var orphans []string
	if lerr == nil {
		for i := 0; i <= latest; i++ {
			if !r.store.VersionExists(i) {
				issues = append(issues, fmt.Sprintf("version directory %d is missing", i))
				continue
			}
			if _, err := r.store.Message(i); err != nil {
				issues = append(issues, fmt.Sprintf("version %d has no message entry", i))
			}
		}

		// Directories above latest are left by crashed operations that
		// never published their version. Harmless, but worth reporting.
		infos, err := afero.ReadDir(r.fs, config.StorageDir)
		if err != nil {
			r.log.Error("verify failed", zap.Error(err))
			return fail(err, MsgSystemProblem)
		}
		var ids []int
		for _, fi := range infos {
			if !fi.IsDir() {
				continue
			}
			if id, err := strconv.Atoi(fi.Name()); err == nil && id > latest {
				ids = append(ids, id)
			}
		}
		sort.Ints(ids)
		for _, id := range ids {
			orphans = append(orphans, strconv.Itoa(id))
		}
	}

	if len(issues) > 0 {
		r.log.Error("repository verification failed", zap.Strings("issues", issues))
		return fail(status.ErrCorruptRepository, strings.Join(issues, "\n"))
	}

	msg := fmt.Sprintf("Repository is consistent. Versions checked: %d.", latest+1)
	if len(orphans) > 0 {
		msg += "\nOrphaned version directories: " + strings.Join(orphans, ", ")
	}
	return ok(msg)
}
