// Package interpreter implements the InterpreterResolver port on top of the interpreter
// cache and the package repositories.
package interpreter

import (
	"context"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.InterpreterResolver = (*Resolver)(nil)

// Resolver implements ports.InterpreterResolver. It never locks the cache directory;
// entries are replaced atomically by the cache itself.
type Resolver struct {
	cache  ports.InterpreterCache
	logger ports.Logger
	group  singleflight.Group
}

// NewResolver creates a new Resolver.
func NewResolver(cache ports.InterpreterCache, logger ports.Logger) *Resolver {
	return &Resolver{cache: cache, logger: logger}
}

type resolved struct {
	extra    domain.Extra
	location string
	cached   bool
}

// Resolve returns a handle derived from interp whose extras satisfy requirement.
// It tries the extras already attached to interp, then the cache, then the repository.
// Returns nil, nil when no distribution satisfies requirement.
func (r *Resolver) Resolve(
	ctx context.Context,
	opts ports.ResolverOptions,
	interp *domain.Interpreter,
	requirement string,
) (*domain.Interpreter, error) {
	req, err := domain.ParseRequirement(requirement)
	if err != nil {
		return nil, err
	}

	vertex, _ := ports.VertexFromContext(ctx)

	if interp.Satisfies(req) {
		if vertex != nil {
			vertex.Cached()
			_, _ = fmt.Fprintf(vertex.Stdout(), "%s already satisfied by %s\n", req.Raw, interp.Binary)
		}
		return interp, nil
	}

	key := cacheKey(interp, requirement)
	v, err, _ := r.group.Do(opts.CacheDir+"\x00"+key, func() (any, error) {
		return r.lookup(ctx, opts, interp, req, key)
	})
	if err != nil {
		return nil, err
	}

	found, _ := v.(*resolved)
	if found == nil {
		return nil, nil
	}
	if vertex != nil {
		if found.cached {
			vertex.Cached()
		}
		_, _ = fmt.Fprintf(vertex.Stdout(), "using %s %s from %s\n",
			found.extra.Name, found.extra.Version, found.location)
	}
	return interp.WithExtra(found.extra, found.location), nil
}

func (r *Resolver) lookup(
	ctx context.Context,
	opts ports.ResolverOptions,
	interp *domain.Interpreter,
	req domain.Requirement,
	key string,
) (*resolved, error) {
	if hit := r.fromCache(opts.CacheDir, key, req); hit != nil {
		return hit, nil
	}

	if opts.Repository == nil {
		return nil, nil
	}

	dist, err := opts.Repository.Find(ctx, req, interp.Identity)
	if err != nil {
		return nil, zerr.With(err, "requirement", req.Raw)
	}
	if dist == nil {
		return nil, nil
	}

	location, err := opts.Repository.Fetch(ctx, *dist, opts.CacheDir)
	if err != nil {
		return nil, zerr.With(err, "requirement", req.Raw)
	}

	found := &resolved{extra: dist.Extra(), location: location}

	entry := domain.InterpreterCacheEntry{
		Key:         key,
		Binary:      interp.Binary,
		Identity:    interp.Identity,
		Requirement: req.Raw,
		Extra:       found.extra,
		Location:    location,
	}
	if err := r.cache.Put(opts.CacheDir, entry); err != nil {
		// A cache write failure does not fail the resolution.
		r.warn(fmt.Sprintf("failed to cache %s for %s: %v", req.Raw, interp.Binary, err))
	}

	return found, nil
}

// fromCache returns the cached resolution for key. Corrupt entries, entries whose
// location vanished and entries that no longer satisfy req are misses.
func (r *Resolver) fromCache(dir, key string, req domain.Requirement) *resolved {
	entry, err := r.cache.Get(dir, key)
	if err != nil {
		r.warn(fmt.Sprintf("ignoring unreadable interpreter cache entry %s: %v", key, err))
		return nil
	}
	if entry == nil {
		return nil
	}

	if !req.Matches(entry.Extra.Name, entry.Extra.Version) {
		return nil
	}
	if _, err := os.Stat(entry.Location); err != nil {
		return nil
	}

	return &resolved{extra: entry.Extra, location: entry.Location, cached: true}
}

func (r *Resolver) warn(msg string) {
	if r.logger != nil {
		r.logger.Warn(msg)
	}
}

// cacheKey identifies a (binary, identity, requirement) triple.
func cacheKey(interp *domain.Interpreter, requirement string) string {
	h := xxhash.New()
	_, _ = h.WriteString(interp.Binary)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(interp.Identity.String())
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(requirement)
	return fmt.Sprintf("%016x", h.Sum64())
}
