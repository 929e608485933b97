package domain

import (
	"path/filepath"
	"strings"
)

// Default values of the build options.
const (
	DefaultEntryPoint            = "__main__"
	DefaultPython                = "python2.7"
	DefaultIndexURL              = "https://pypi.org/simple/"
	DefaultSearchPath            = "/bin:/usr/bin"
	DefaultSetuptoolsRequirement = "setuptools>=2.2,<20"
	DefaultWheelRequirement      = "wheel>=0.24.0,<0.27.0"
)

// PinnedSetuptools and PinnedWheel are the versions of the utility packages whose locations
// are injected into the preliminary interpreter handle when SetuptoolsPath or WheelPath is set.
var (
	PinnedSetuptools = Extra{Name: "setuptools", Version: "18.0.1"}
	PinnedWheel      = Extra{Name: "wheel", Version: "0.23.0"}
)

// BuildOptions configures a single build invocation.
type BuildOptions struct {
	EntryPoint string
	ZipSafe    bool
	// Python is the interpreter binary name or path.
	Python    string
	PyPI      bool
	FindLinks []string
	UseWheel  bool
	PexRoot   string
	IndexURL  string
	// SearchPath is scanned for the interpreter when PATH is empty.
	SearchPath string

	SetuptoolsPath        string
	WheelPath             string
	SetuptoolsRequirement string
	WheelRequirement      string

	// BootstrapFiles are extra files placed below the archive bootstrap directory.
	BootstrapFiles []string

	// Journal, when set, receives every recorded build step as JSON lines.
	Journal string
	// LogJSON selects JSON log records instead of text.
	LogJSON bool
}

// DefaultOptions returns the options used when neither a config file nor flags override them.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		EntryPoint:            DefaultEntryPoint,
		ZipSafe:               true,
		Python:                DefaultPython,
		PyPI:                  true,
		UseWheel:              true,
		PexRoot:               DefaultPexRoot,
		IndexURL:              DefaultIndexURL,
		SearchPath:            DefaultSearchPath,
		SetuptoolsRequirement: DefaultSetuptoolsRequirement,
		WheelRequirement:      DefaultWheelRequirement,
	}
}

// CacheDir returns the resolver cache directory.
func (o BuildOptions) CacheDir() string {
	return filepath.Join(o.PexRoot, BuildCacheDirName)
}

// InterpreterCacheDir returns the interpreter cache directory.
func (o BuildOptions) InterpreterCacheDir() string {
	return filepath.Join(o.PexRoot, InterpreterCacheDirName)
}

// Shebang returns the first line of the archive.
func (o BuildOptions) Shebang() string {
	if strings.ContainsRune(o.Python, '/') || strings.ContainsRune(o.Python, filepath.Separator) {
		return "#!" + o.Python
	}
	return "#!/usr/bin/env " + o.Python
}

// PinnedExtras returns the utility package locations configured for the preliminary handle.
func (o BuildOptions) PinnedExtras() map[Extra]string {
	extras := make(map[Extra]string, 2)
	if o.SetuptoolsPath != "" {
		extras[PinnedSetuptools] = o.SetuptoolsPath
	}
	if o.WheelPath != "" {
		extras[PinnedWheel] = o.WheelPath
	}
	return extras
}

// Requirements returns the ordered interpreter requirement chain.
func (o BuildOptions) Requirements() []string {
	reqs := []string{o.SetuptoolsRequirement}
	if o.UseWheel {
		reqs = append(reqs, o.WheelRequirement)
	}
	return reqs
}
