package repo

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/keshon/gvt/internal/config"
	"github.com/keshon/gvt/internal/repo/snapshot"
	"github.com/keshon/gvt/internal/repo/status"
)

func (r *Repository) init() Result {
	if err := r.store.Init(); err != nil {
		if errors.Is(err, status.ErrAlreadyInitialized) {
			return fail(err, "Current directory is already initialized.")
		}
		r.log.Error("init failed", zap.Error(err))
		return fail(err, MsgSystemProblem)
	}
	r.log.Info("repository initialized")
	return ok("Current directory initialized successfully.")
}

func (r *Repository) add(cmd Command) Result {
	if cmd.File == "" {
		return fail(status.ErrNoFileSpecified, "Please specify file to add.")
	}
	if cmd.File == config.MessageEntry {
		// The message entry name is reserved for bookkeeping.
		return fail(status.ErrFileNotFound, "File not found. File: "+cmd.File)
	}
	if exists, err := afero.Exists(r.fs, cmd.File); err != nil || !exists {
		return fail(status.ErrFileNotFound, "File not found. File: "+cmd.File)
	}

	latest, err := r.store.LatestVersion()
	if err != nil {
		return r.corrupt(err)
	}
	if r.store.FileTracked(latest, cmd.File) {
		return ok("File already added. File: " + cmd.File)
	}

	message := cmd.Message
	if message == "" {
		message = "File added successfully. File: " + cmd.File
	}
	next, err := r.advance(latest, snapshot.Mutation{Kind: snapshot.Add, Name: cmd.File}, message)
	if err != nil {
		r.log.Error("add failed", zap.String("file", cmd.File), zap.Error(err))
		return fail(err, "File cannot be added. See ERR for details. File: "+cmd.File)
	}
	r.log.Debug("file added", zap.String("file", cmd.File), zap.Int("version", next))
	return ok("File added successfully. File: " + cmd.File)
}

func (r *Repository) detach(cmd Command) Result {
	if cmd.File == "" {
		return fail(status.ErrNoFileSpecified, "Please specify file to detach.")
	}

	latest, err := r.store.LatestVersion()
	if err != nil {
		return r.corrupt(err)
	}
	if !r.store.FileTracked(latest, cmd.File) {
		return ok("File is not added to gvt. File: " + cmd.File)
	}

	message := cmd.Message
	if message == "" {
		message = "File detached successfully. File: " + cmd.File
	}
	next, err := r.advance(latest, snapshot.Mutation{Kind: snapshot.Remove, Name: cmd.File}, message)
	if err != nil {
		r.log.Error("detach failed", zap.String("file", cmd.File), zap.Error(err))
		return fail(err, "File cannot be detached, see ERR for details. File: "+cmd.File)
	}
	r.log.Debug("file detached", zap.String("file", cmd.File), zap.Int("version", next))
	return ok("File detached successfully. File: " + cmd.File)
}

func (r *Repository) commit(cmd Command) Result {
	if cmd.File == "" {
		return fail(status.ErrNoFileSpecified, "Please specify file to commit.")
	}
	if cmd.File == config.MessageEntry {
		return fail(status.ErrFileNotFound, "File not found. File: "+cmd.File)
	}
	// The missing-file check precedes the tracked check.
	if exists, err := afero.Exists(r.fs, cmd.File); err != nil || !exists {
		return fail(status.ErrFileNotFound, "File not found. File: "+cmd.File)
	}

	latest, err := r.store.LatestVersion()
	if err != nil {
		return r.corrupt(err)
	}
	if !r.store.FileTracked(latest, cmd.File) {
		return ok("File is not added to gvt. File: " + cmd.File)
	}

	message := cmd.Message
	if message == "" {
		message = "File committed successfully. File: " + cmd.File
	}
	next, err := r.advance(latest, snapshot.Mutation{Kind: snapshot.Update, Name: cmd.File}, message)
	if err != nil {
		r.log.Error("commit failed", zap.String("file", cmd.File), zap.Error(err))
		return fail(err, "File cannot be committed, see ERR for details. File: "+cmd.File)
	}
	r.log.Debug("file committed", zap.String("file", cmd.File), zap.Int("version", next))
	return ok("File committed successfully. File: " + cmd.File)
}

func (r *Repository) checkout(cmd Command) Result {
	if cmd.NArgs != 1 {
		return fail(status.ErrInvalidVersion, "Invalid version number: "+cmd.Version)
	}
	target, err := strconv.Atoi(cmd.Version)
	if err != nil {
		return fail(status.ErrInvalidVersion, "Invalid version number: "+cmd.Version)
	}

	latest, err := r.store.LatestVersion()
	if err != nil {
		return r.corrupt(err)
	}
	if target < 0 || target > latest {
		return fail(status.ErrInvalidVersion, fmt.Sprintf("Invalid version number: %d", target))
	}
	active, err := r.store.ActiveVersion()
	if err != nil {
		return r.corrupt(err)
	}

	// Remove what the active version tracks before copying the target
	// in, so files absent from the target end up gone from the working
	// directory. Untracked working files are left alone.
	activeFiles, err := r.store.ListTrackedFiles(active)
	if err != nil {
		r.log.Error("checkout failed", zap.Int("version", target), zap.Error(err))
		return fail(err, MsgSystemProblem)
	}
	for _, name := range activeFiles {
		if err := r.fs.Remove(name); err != nil && !os.IsNotExist(err) {
			r.log.Error("checkout failed", zap.String("file", name), zap.Error(err))
			return fail(err, MsgSystemProblem)
		}
	}

	targetFiles, err := r.store.ListTrackedFiles(target)
	if err != nil {
		r.log.Error("checkout failed", zap.Int("version", target), zap.Error(err))
		return fail(err, MsgSystemProblem)
	}
	for _, name := range targetFiles {
		data, err := r.store.ReadFile(target, name)
		if err == nil {
			err = afero.WriteFile(r.fs, name, data, 0o644)
		}
		if err != nil {
			r.log.Error("checkout failed", zap.String("file", name), zap.Error(err))
			return fail(err, MsgSystemProblem)
		}
	}

	if err := r.store.SetActiveVersion(target); err != nil {
		r.log.Error("checkout failed", zap.Int("version", target), zap.Error(err))
		return fail(err, MsgSystemProblem)
	}
	r.log.Debug("checked out", zap.Int("version", target))
	return ok(fmt.Sprintf("Checkout successful for version: %d", target))
}

// advance builds the next version and publishes it: latest first, then
// active. A crash in between leaves at worst an orphaned directory and
// a still-consistent pointer pair.
func (r *Repository) advance(base int, mut snapshot.Mutation, message string) (int, error) {
	next, err := r.snap.Next(base, mut, message)
	if err != nil {
		return 0, err
	}
	if err := r.store.SetLatestVersion(next); err != nil {
		return 0, err
	}
	if err := r.store.SetActiveVersion(next); err != nil {
		return 0, err
	}
	return next, nil
}
