package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BinaryLocator = (*Locator)(nil)

// Locator finds interpreter binaries.
type Locator struct {
	getenv func(string) string
}

// NewLocator creates a Locator that reads PATH from the process environment.
func NewLocator() *Locator {
	return NewLocatorWithEnv(os.Getenv)
}

// NewLocatorWithEnv creates a Locator that reads PATH through getenv.
func NewLocatorWithEnv(getenv func(string) string) *Locator {
	return &Locator{getenv: getenv}
}

// Locate returns name when it is an existing file. Otherwise it searches PATH, or
// searchPath when PATH is empty, for an executable called name.
func (l *Locator) Locate(name, searchPath string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	path := l.getenv("PATH")
	if path == "" {
		path = searchPath
	}

	if found, ok := lookPath(name, path); ok {
		return found, nil
	}
	return "", zerr.With(domain.ErrInterpreterNotFound, "python", name)
}

// lookPath searches for an executable in the directories of a PATH style list.
func lookPath(file, list string) (string, bool) {
	if file == "" || filepath.Base(file) != file {
		return "", false
	}

	for _, dir := range filepath.SplitList(list) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if findExecutable(path) == nil {
			return path, true
		}
	}
	return "", false
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
