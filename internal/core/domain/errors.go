package domain

import "go.trai.ch/zerr"

var (
	// ErrOutputRequired is returned when the output positional argument is missing.
	ErrOutputRequired = zerr.New("'output' positional argument is required")

	// ErrManifestReadFailed is returned when the manifest file or standard input cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrSymlinkCycle is returned when a chain of symbolic links does not terminate.
	ErrSymlinkCycle = zerr.New("symbolic link chain does not terminate")

	// ErrSymlinkReadFailed is returned when a symbolic link target cannot be read.
	ErrSymlinkReadFailed = zerr.New("failed to read symbolic link")

	// ErrInterpreterNotFound is returned when the requested interpreter binary cannot be located.
	ErrInterpreterNotFound = zerr.New("could not find interpreter binary")

	// ErrInterpreterProbeFailed is returned when the interpreter identity cannot be determined.
	ErrInterpreterProbeFailed = zerr.New("failed to identify interpreter")

	// ErrInvalidIdentity is returned when an interpreter reports an identity that cannot be parsed.
	ErrInvalidIdentity = zerr.New("invalid interpreter identity")

	// ErrCannotSetupInterpreter is returned when no interpreter satisfies a requirement.
	ErrCannotSetupInterpreter = zerr.New("could not find compatible interpreter that meets requirement")

	// ErrInvalidRequirement is returned when a requirement string cannot be parsed.
	ErrInvalidRequirement = zerr.New("invalid requirement")

	// ErrInvalidVersion is returned when a distribution version cannot be parsed.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrRequirementNotFound is returned when no distribution satisfies a manifest requirement.
	ErrRequirementNotFound = zerr.New("no distribution satisfies requirement")

	// ErrRepositoryRequestFailed is returned when a remote repository request fails.
	ErrRepositoryRequestFailed = zerr.New("failed to query package repository")

	// ErrRepositoryParseFailed is returned when a repository page cannot be parsed.
	ErrRepositoryParseFailed = zerr.New("failed to parse package repository page")

	// ErrRepositoryListFailed is returned when a local find-links directory cannot be listed.
	ErrRepositoryListFailed = zerr.New("failed to list find-links directory")

	// ErrDownloadFailed is returned when a distribution cannot be downloaded into the cache.
	ErrDownloadFailed = zerr.New("failed to download distribution")

	// ErrCacheCreateFailed is returned when a cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheReadFailed is returned when a cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache entry")

	// ErrCacheUnmarshalFailed is returned when a cache entry cannot be unmarshaled.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrCacheMarshalFailed is returned when a cache entry cannot be marshaled.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrChrootCreateFailed is returned when the archive staging directory cannot be created.
	ErrChrootCreateFailed = zerr.New("failed to create archive staging directory")

	// ErrDuplicateEntry is returned when two entries claim the same destination in a target.
	ErrDuplicateEntry = zerr.New("destination already claimed in archive")

	// ErrInvalidDestination is returned when a destination path escapes the archive root.
	ErrInvalidDestination = zerr.New("destination path escapes archive root")

	// ErrSourceIsDirectory is returned when a module or resource source is a directory.
	ErrSourceIsDirectory = zerr.New("source is a directory")

	// ErrLinkFailed is returned when a source cannot be linked or copied into the staging directory.
	ErrLinkFailed = zerr.New("failed to stage file")

	// ErrUnsupportedDistribution is returned when a dist location is neither a directory nor an archive.
	ErrUnsupportedDistribution = zerr.New("unsupported distribution location")

	// ErrDistributionExtractFailed is returned when a distribution archive cannot be expanded.
	ErrDistributionExtractFailed = zerr.New("failed to expand distribution")

	// ErrArchiveWriteFailed is returned when the archive cannot be written.
	ErrArchiveWriteFailed = zerr.New("failed to write archive")

	// ErrTargetSealed is returned when a target is modified after it was built.
	ErrTargetSealed = zerr.New("archive target already built")

	// ErrJournalCreateFailed is returned when the build journal cannot be created.
	ErrJournalCreateFailed = zerr.New("failed to create build journal")

	// ErrPublishFailed is returned when the finished archive cannot be moved into place.
	ErrPublishFailed = zerr.New("failed to move archive into place")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrInvalidTransition is returned when the build state machine is driven out of order.
	ErrInvalidTransition = zerr.New("invalid build state transition")
)
