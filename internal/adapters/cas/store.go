// Package cas implements the on-disk interpreter cache as one JSON file per key.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InterpreterCache = (*Store)(nil)

// Store implements ports.InterpreterCache. Entries are written through a temporary file
// and renamed into place, so concurrent builds sharing a cache directory never observe
// a partially written entry.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the entry stored under key in dir.
// Returns nil, nil if not found.
func (s *Store) Get(dir, key string) (*domain.InterpreterCacheEntry, error) {
	path, err := entryPath(dir, key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is a validated key below the cache dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	var entry domain.InterpreterCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error()), "path", path)
	}
	if entry.Key != key {
		return nil, zerr.With(zerr.With(domain.ErrCacheUnmarshalFailed, "path", path), "key", entry.Key)
	}

	return &entry, nil
}

// Put stores the entry in dir under entry.Key.
func (s *Store) Put(dir string, entry domain.InterpreterCacheEntry) error {
	path, err := entryPath(dir, entry.Key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := atomicWriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	return nil
}

func entryPath(dir, key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return "", zerr.With(domain.ErrCacheReadFailed, "key", key)
	}
	return filepath.Join(filepath.Clean(dir), key+".json"), nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}

	tmpFile, err := os.CreateTemp(dir, "interpreter-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
