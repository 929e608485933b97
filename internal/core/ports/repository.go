package ports

import (
	"context"

	"go.trai.ch/pexwrap/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository finds and fetches distributions.
type Repository interface {
	// Find returns the highest version compatible with identity that satisfies req.
	// Returns nil, nil if not found.
	Find(ctx context.Context, req domain.Requirement, identity domain.Identity) (*domain.Distribution, error)

	// Fetch makes dist available on the local filesystem and returns its path.
	// Remote distributions are downloaded below cacheDir.
	Fetch(ctx context.Context, dist domain.Distribution, cacheDir string) (string, error)
}

// RepositoryFactory builds the repository set described by the build options.
type RepositoryFactory interface {
	New(opts domain.BuildOptions) Repository
}
