package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Local is a find-links directory on the local filesystem.
type Local struct {
	dir string
}

// NewLocal creates a source for the find-links directory dir. A "file://" prefix is accepted.
func NewLocal(dir string) *Local {
	return &Local{dir: strings.TrimPrefix(dir, "file://")}
}

// Candidates lists the wheels and eggs in the directory that name req's project.
// A missing directory offers no candidates.
func (l *Local) Candidates(_ context.Context, req domain.Requirement) ([]domain.Distribution, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryListFailed.Error()), "path", l.dir)
	}

	var out []domain.Distribution
	for _, entry := range entries {
		path := filepath.Join(l.dir, entry.Name())
		dist, ok := domain.ParseDistribution(entry.Name(), path)
		if !ok || dist.Project != req.Name {
			continue
		}
		if entry.IsDir() && dist.Kind != domain.KindEgg {
			continue
		}
		out = append(out, dist)
	}
	return out, nil
}
