// Package config provides the configuration loader for pexwrap.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pexwrap/internal/core/domain"
	"go.trai.ch/pexwrap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load returns the default options overlaid with the file at path.
func (l *Loader) Load(path string, explicit bool) (domain.BuildOptions, error) {
	opts := domain.DefaultOptions()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return opts, nil
		}
		return opts, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Pexfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return opts, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	file.apply(&opts, filepath.Dir(path))
	if l.Logger != nil {
		l.Logger.Info("loaded configuration from " + path)
	}
	return opts, nil
}

// apply overlays the values present in the file. Relative find-links directories,
// bootstrap files, extra locations and the journal are taken relative to the config file.
func (f *Pexfile) apply(opts *domain.BuildOptions, base string) {
	setString(&opts.EntryPoint, f.EntryPoint)
	setBool(&opts.ZipSafe, f.ZipSafe)
	setString(&opts.Python, f.Python)
	setBool(&opts.PyPI, f.PyPI)
	setBool(&opts.UseWheel, f.UseWheel)
	setString(&opts.PexRoot, f.PexRoot)
	setString(&opts.IndexURL, f.IndexURL)
	setString(&opts.SearchPath, f.SearchPath)
	setString(&opts.SetuptoolsRequirement, f.Extras.SetuptoolsRequirement)
	setString(&opts.WheelRequirement, f.Extras.WheelRequirement)
	setBool(&opts.LogJSON, f.LogJSON)

	if f.Journal != nil {
		opts.Journal = relativeTo(base, *f.Journal)
	}

	if f.Extras.SetuptoolsPath != nil {
		opts.SetuptoolsPath = relativeTo(base, *f.Extras.SetuptoolsPath)
	}
	if f.Extras.WheelPath != nil {
		opts.WheelPath = relativeTo(base, *f.Extras.WheelPath)
	}

	for _, link := range f.FindLinks {
		opts.FindLinks = append(opts.FindLinks, relativeTo(base, link))
	}
	for _, file := range f.Bootstrap {
		opts.BootstrapFiles = append(opts.BootstrapFiles, relativeTo(base, file))
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// relativeTo leaves URLs and absolute paths alone.
func relativeTo(base, p string) string {
	if p == "" || filepath.IsAbs(p) || isURL(p) {
		return p
	}
	return filepath.Join(base, p)
}

func isURL(p string) bool {
	for _, scheme := range []string{"http://", "https://", "file://"} {
		if strings.HasPrefix(p, scheme) {
			return true
		}
	}
	return false
}
