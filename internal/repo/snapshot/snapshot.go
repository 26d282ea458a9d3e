// Package snapshot materializes a new version directory from a base
// version plus exactly one mutation.
package snapshot

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/keshon/gvt/internal/repo/store"
)

// Kind selects the single mutation applied on top of the base copy.
type Kind int

const (
	// Add copies a working-directory file into the new version.
	Add Kind = iota
	// Remove drops a tracked file from the new version.
	Remove
	// Update replaces a tracked file with its working-directory content.
	Update
)

// Mutation names the one file the new version differs by from its base.
type Mutation struct {
	Kind Kind
	Name string
}

// Builder copies whole versions. The filesystem is rooted at the
// working directory, so mutation sources are read by plain name.
type Builder struct {
	fs    afero.Fs
	store *store.Store
}

// New constructs a Builder over the given filesystem and store.
func New(fs afero.Fs, st *store.Store) *Builder {
	return &Builder{fs: fs, store: st}
}

// Next creates version base+1 as a full byte-for-byte copy of base,
// applies mut, records message and returns the new version number.
// Pointer files are untouched: the caller publishes the new version by
// updating latest and active afterwards, so a crash mid-build leaves an
// orphaned directory and consistent pointers.
func (b *Builder) Next(base int, mut Mutation, message string) (int, error) {
	next := base + 1
	if err := b.store.CreateVersionDir(next); err != nil {
		return 0, err
	}

	names, err := b.store.ListTrackedFiles(base)
	if err != nil {
		return 0, err
	}
	for _, name := range names {
		if mut.Kind == Remove && name == mut.Name {
			continue
		}
		data, err := b.store.ReadFile(base, name)
		if err != nil {
			return 0, fmt.Errorf("failed to copy version %d: %w", base, err)
		}
		if err := b.store.WriteFile(next, name, data); err != nil {
			return 0, fmt.Errorf("failed to copy version %d: %w", base, err)
		}
	}

	if mut.Kind == Add || mut.Kind == Update {
		data, err := afero.ReadFile(b.fs, mut.Name)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s from working directory: %w", mut.Name, err)
		}
		if err := b.store.WriteFile(next, mut.Name, data); err != nil {
			return 0, err
		}
	}

	if err := b.store.WriteMessage(next, message); err != nil {
		return 0, err
	}
	return next, nil
}
