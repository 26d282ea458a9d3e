// Package store owns the on-disk repository layout: the numbered version
// directories and the latest/active pointer files under .gvt.
package store

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/keshon/gvt/internal/config"
	"github.com/keshon/gvt/internal/repo/status"
	"github.com/keshon/gvt/internal/util"
)

// InitMessage is recorded as the message of version 0.
const InitMessage = "GVT initialized."

// Store persists repository state under <workdir>/.gvt. The filesystem
// is rooted at the working directory, so all paths are relative.
type Store struct {
	fs afero.Fs
}

// New constructs a Store on top of the given filesystem.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Initialized reports whether the storage directory exists.
func (s *Store) Initialized() bool {
	ok, err := afero.DirExists(s.fs, config.StorageDir)
	return err == nil && ok
}

// Init creates the storage layout: the .gvt directory, both counters at
// zero, and version 0 with its initialization message. There is no
// rollback on partial failure.
func (s *Store) Init() error {
	if s.Initialized() {
		return fmt.Errorf("%w: %s exists", status.ErrAlreadyInitialized, config.StorageDir)
	}
	if err := s.fs.Mkdir(config.StorageDir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}
	if err := s.SetLatestVersion(0); err != nil {
		return err
	}
	if err := s.SetActiveVersion(0); err != nil {
		return err
	}
	if err := s.CreateVersionDir(0); err != nil {
		return err
	}
	return s.WriteMessage(0, InitMessage)
}

// LatestVersion reads the highest version number that exists.
func (s *Store) LatestVersion() (int, error) {
	return s.readCounter(config.LatestVersionFile)
}

// ActiveVersion reads the version the working directory is synced to.
func (s *Store) ActiveVersion() (int, error) {
	return s.readCounter(config.ActiveVersionFile)
}

// SetLatestVersion overwrites the latest version counter. Keeping the
// invariant active <= latest is the caller's contract.
func (s *Store) SetLatestVersion(n int) error {
	return s.writeCounter(config.LatestVersionFile, n)
}

// SetActiveVersion overwrites the active version counter.
func (s *Store) SetActiveVersion(n int) error {
	return s.writeCounter(config.ActiveVersionFile, n)
}

func (s *Store) counterPath(name string) string {
	return filepath.Join(config.StorageDir, name)
}

func (s *Store) readCounter(name string) (int, error) {
	data, err := afero.ReadFile(s.fs, s.counterPath(name))
	if err != nil {
		return 0, fmt.Errorf("%w: counter %s is unreadable: %v", status.ErrCorruptRepository, name, err)
	}
	raw := strings.TrimSpace(string(data))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: counter %s holds %q", status.ErrCorruptRepository, name, raw)
	}
	return n, nil
}

func (s *Store) writeCounter(name string, n int) error {
	if err := util.WriteFileAtomic(s.fs, s.counterPath(name), []byte(strconv.Itoa(n))); err != nil {
		return fmt.Errorf("failed to write counter %s: %w", name, err)
	}
	return nil
}
