// Package repo implements the versioning engine: the state transitions
// of init, add, detach, commit and checkout over numbered full-copy
// version directories, plus the read-only inspection operations.
package repo

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/keshon/gvt/internal/repo/snapshot"
	"github.com/keshon/gvt/internal/repo/store"
)

// Repository drives all operations against one working directory. The
// filesystem is rooted at that directory; state lives entirely on disk
// as (latest, active, version contents).
type Repository struct {
	fs    afero.Fs
	store *store.Store
	snap  *snapshot.Builder
	log   *zap.Logger
}

// New constructs a Repository over the given working-directory
// filesystem. A nil logger disables logging.
func New(fs afero.Fs, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	st := store.New(fs)
	return &Repository{
		fs:    fs,
		store: st,
		snap:  snapshot.New(fs, st),
		log:   log,
	}
}

// Initialized reports whether the storage directory exists.
func (r *Repository) Initialized() bool {
	return r.store.Initialized()
}
