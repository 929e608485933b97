package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver dereferences manifest source paths.
type Resolver struct {
	maxHops int
}

// NewResolver creates a Resolver that gives up after domain.MaxSymlinkHops links.
func NewResolver() *Resolver {
	return &Resolver{maxHops: domain.MaxSymlinkHops}
}

// Dereference replaces path with its link target for as long as path itself is a symbolic link.
// Relative targets are joined to the directory holding the link without lexical cleaning, so
// links in parent components are resolved by the operating system, not here.
// A path that does not exist is returned unchanged.
func (r *Resolver) Dereference(path string) (string, error) {
	visited := make(map[string]struct{})
	current := path

	for hops := 0; ; hops++ {
		info, err := os.Lstat(current)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return current, nil
		}

		if _, seen := visited[current]; seen || hops >= r.maxHops {
			err := zerr.With(domain.ErrSymlinkCycle, "path", path)
			return "", zerr.With(err, "hops", hops)
		}
		visited[current] = struct{}{}

		target, err := os.Readlink(current)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrSymlinkReadFailed.Error()), "path", current)
		}

		if filepath.IsAbs(target) {
			current = target
		} else {
			current = filepath.Dir(current) + string(filepath.Separator) + target
		}
	}
}
