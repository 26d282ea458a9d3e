package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/keshon/gvt/internal/config"
	"github.com/keshon/gvt/internal/repo/status"
	"github.com/keshon/gvt/internal/util"
)

// VersionDir returns the storage path of version n.
func (s *Store) VersionDir(n int) string {
	return filepath.Join(config.StorageDir, strconv.Itoa(n))
}

// VersionExists reports whether the directory for version n is present.
func (s *Store) VersionExists(n int) bool {
	ok, err := afero.DirExists(s.fs, s.VersionDir(n))
	return err == nil && ok
}

// CreateVersionDir creates the directory for version n. An existing
// directory is a consistency fault, not a case to merge into.
func (s *Store) CreateVersionDir(n int) error {
	if s.VersionExists(n) {
		return fmt.Errorf("%w: version %d", status.ErrVersionExists, n)
	}
	if err := s.fs.Mkdir(s.VersionDir(n), 0o755); err != nil {
		return fmt.Errorf("failed to create version %d: %w", n, err)
	}
	return nil
}

// ListTrackedFiles returns the file names tracked by version n, sorted,
// with internal bookkeeping entries excluded.
func (s *Store) ListTrackedFiles(n int) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.VersionDir(n))
	if err != nil {
		return nil, fmt.Errorf("failed to read version %d: %w", n, err)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if fi.Name() == config.MessageEntry {
			continue
		}
		names = append(names, fi.Name())
	}
	sort.Strings(names)
	return names, nil
}

// FileTracked reports whether version n tracks the named file.
func (s *Store) FileTracked(n int, name string) bool {
	if name == config.MessageEntry {
		return false
	}
	ok, err := afero.Exists(s.fs, filepath.Join(s.VersionDir(n), name))
	return err == nil && ok
}

// ReadFile returns the bytes of a tracked file in version n.
func (s *Store) ReadFile(n int, name string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, filepath.Join(s.VersionDir(n), name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from version %d: %w", name, n, err)
	}
	return data, nil
}

// WriteFile stores the bytes of a tracked file into version n.
func (s *Store) WriteFile(n int, name string, data []byte) error {
	if err := afero.WriteFile(s.fs, filepath.Join(s.VersionDir(n), name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s into version %d: %w", name, n, err)
	}
	return nil
}

// RemoveFile drops a tracked file from version n.
func (s *Store) RemoveFile(n int, name string) error {
	if err := s.fs.Remove(filepath.Join(s.VersionDir(n), name)); err != nil {
		return fmt.Errorf("failed to remove %s from version %d: %w", name, n, err)
	}
	return nil
}

// Message returns the full commit message text of version n.
func (s *Store) Message(n int) (string, error) {
	data, err := afero.ReadFile(s.fs, filepath.Join(s.VersionDir(n), config.MessageEntry))
	if err != nil {
		return "", fmt.Errorf("failed to read message of version %d: %w", n, err)
	}
	return string(data), nil
}

// MessageFirstLine returns the canonical one-line message of version n.
func (s *Store) MessageFirstLine(n int) (string, error) {
	msg, err := s.Message(n)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(msg, "\n")
	return line, nil
}

// WriteMessage records the commit message of version n.
func (s *Store) WriteMessage(n int, text string) error {
	path := filepath.Join(s.VersionDir(n), config.MessageEntry)
	if err := util.WriteFileAtomic(s.fs, path, []byte(text)); err != nil {
		return fmt.Errorf("failed to write message of version %d: %w", n, err)
	}
	return nil
}
