package domain

const (
	// DefaultPexRoot is the default root directory for derived cache directories.
	DefaultPexRoot = ".pex"

	// BuildCacheDirName is the name of the resolver cache directory below the pex root.
	BuildCacheDirName = "build"

	// InterpreterCacheDirName is the name of the interpreter cache directory below the pex root.
	InterpreterCacheDirName = "interpreters"

	// DownloadsDirName is the name of the directory holding fetched distributions.
	DownloadsDirName = "downloads"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "pexwrap.yaml"

	// TempSuffix is appended to the output path while the archive is written.
	TempSuffix = "~"

	// DepsDirName is the archive directory that holds bundled distributions.
	DepsDirName = ".deps"

	// BootstrapDirName is the archive directory that holds bootstrap support files.
	BootstrapDirName = ".bootstrap"

	// PexInfoFileName is the name of the archive metadata file.
	PexInfoFileName = "PEX-INFO"

	// MainFileName is the name of the archive entry module.
	MainFileName = "__main__.py"

	// MaxSymlinkHops bounds how many links are followed before a chain is treated as a cycle.
	MaxSymlinkHops = 40

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission of the finished archive (rwxr-xr-x).
	ExecPerm = 0o755
)
