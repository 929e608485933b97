package ports

//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// PathResolver normalizes manifest source paths.
type PathResolver interface {
	// Dereference follows the chain of symbolic links that path itself names.
	// Links in parent directory components are left alone.
	Dereference(path string) (string, error)
}

// BinaryLocator finds executables.
type BinaryLocator interface {
	// Locate returns name unchanged when it names an existing file, otherwise the first
	// executable called name on PATH, or on searchPath when PATH is empty.
	Locate(name, searchPath string) (string, error)
}

// Hasher computes content hashes.
type Hasher interface {
	// HashFile returns the hex encoded hash of a file's content.
	HashFile(path string) (string, error)
	// HashTree returns a hash over the relative paths and contents of every file below root.
	HashTree(root string) (string, error)
}

// Publisher places finished files at their final path.
type Publisher interface {
	// Publish calls write with a temporary sibling of output and renames the result onto output.
	// On failure output is left untouched and the temporary file is removed.
	Publish(output string, write func(tmp string) error) error
}
