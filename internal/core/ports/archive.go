package ports

import (
	"context"

	"go.trai.ch/pexwrap/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks

// ArchiveBuilder creates build targets.
type ArchiveBuilder interface {
	// BuildPex creates a fresh target for interp with every requirement resolved and bundled.
	BuildPex(
		ctx context.Context,
		requirements []string,
		opts domain.BuildOptions,
		resolverOpts ResolverOptions,
		interp *domain.Interpreter,
	) (BuildTarget, error)
}

// BuildTarget is an archive under construction. It is sealed by Build.
type BuildTarget interface {
	SetZipSafe(zipSafe bool)
	SetEntryPoint(entryPoint string)

	// AddBootstrap adds the bootstrap entry module and the given support files.
	AddBootstrap(files []string) error
	// AddSource adds a python module at dest.
	AddSource(path, dest string) error
	// AddResource adds a data file at dest.
	AddResource(path, dest string) error
	// AddDistLocation bundles the wheel, egg or installed distribution at path.
	AddDistLocation(path string) error

	// Build writes the archive to output.
	Build(output string) error
	// Close removes the staging area.
	Close() error
}
