package util

import (
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// WriteFileAtomic writes data to path via a temp file and rename.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := afero.TempFile(fs, dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer fs.Remove(tmpPath) // ensure cleanup on error

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		// MemMapFs refuses to rename over an existing file.
		if rmErr := fs.Remove(path); rmErr != nil {
			return err
		}
		return fs.Rename(tmpPath, path)
	}
	return nil
}

// SortedKeys returns the keys of a map sorted alphabetically.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
