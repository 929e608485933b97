package ports

import (
	"context"

	"go.trai.ch/pexwrap/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks

// InterpreterProber identifies interpreter binaries.
type InterpreterProber interface {
	// Identify runs binary and reports its implementation and version.
	Identify(ctx context.Context, binary string) (domain.Identity, error)
}

// InterpreterCache persists resolved interpreter extras.
type InterpreterCache interface {
	// Get retrieves the entry stored under key in dir.
	// Returns nil, nil if not found.
	Get(dir, key string) (*domain.InterpreterCacheEntry, error)

	// Put stores the entry in dir.
	Put(dir string, entry domain.InterpreterCacheEntry) error
}

// ResolverOptions configures where the interpreter resolver looks for distributions.
type ResolverOptions struct {
	CacheDir   string
	Repository Repository
}

// InterpreterResolver refines interpreter handles so they satisfy requirements.
type InterpreterResolver interface {
	// Resolve returns a handle derived from interp whose extras satisfy requirement.
	// Returns nil, nil when no interpreter can satisfy it.
	Resolve(ctx context.Context, opts ResolverOptions, interp *domain.Interpreter, requirement string) (*domain.Interpreter, error)
}
