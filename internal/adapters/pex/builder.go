// Package pex builds self-contained Python executable archives.
package pex

import (
	"context"
	"runtime"

	"go.trai.ch/pexwrap/internal/adapters/fs"
	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ArchiveBuilder = (*Builder)(nil)

// Builder implements ports.ArchiveBuilder.
type Builder struct {
	walker *fs.Walker
	hasher ports.Hasher
}

// NewBuilder creates a new Builder.
func NewBuilder(walker *fs.Walker, hasher ports.Hasher) *Builder {
	return &Builder{walker: walker, hasher: hasher}
}

// BuildPex creates a staged target and bundles every requirement into it.
// Requirements are resolved without their transitive dependencies.
func (b *Builder) BuildPex(
	ctx context.Context,
	requirements []string,
	opts domain.BuildOptions,
	resolverOpts ports.ResolverOptions,
	interp *domain.Interpreter,
) (ports.BuildTarget, error) {
	target, err := NewTarget(b.walker, b.hasher, opts.Shebang())
	if err != nil {
		return nil, err
	}
	target.setRequirements(requirements)
	target.setBuildProperties(interp.Identity)

	locations, err := b.resolve(ctx, requirements, resolverOpts, interp.Identity)
	if err != nil {
		_ = target.Close()
		return nil, err
	}

	for _, location := range locations {
		if err := target.AddDistLocation(location); err != nil {
			_ = target.Close()
			return nil, err
		}
	}

	return target, nil
}

// resolve looks requirements up concurrently and returns their local paths in input order.
func (b *Builder) resolve(
	ctx context.Context,
	requirements []string,
	opts ports.ResolverOptions,
	identity domain.Identity,
) ([]string, error) {
	locations := make([]string, len(requirements))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, raw := range requirements {
		g.Go(func() error {
			req, err := domain.ParseRequirement(raw)
			if err != nil {
				return err
			}

			if opts.Repository == nil {
				return zerr.With(domain.ErrRequirementNotFound, "requirement", raw)
			}

			dist, err := opts.Repository.Find(groupCtx, req, identity)
			if err != nil {
				return zerr.With(err, "requirement", raw)
			}
			if dist == nil {
				return zerr.With(domain.ErrRequirementNotFound, "requirement", raw)
			}

			location, err := opts.Repository.Fetch(groupCtx, *dist, opts.CacheDir)
			if err != nil {
				return zerr.With(err, "requirement", raw)
			}
			locations[i] = location
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return locations, nil
}
