package domain

import (
	"path"
	"runtime"
	"strings"
)

// DistributionKind tells how a distribution is packaged.
type DistributionKind int

const (
	// KindWheel is a .whl archive.
	KindWheel DistributionKind = iota + 1
	// KindEgg is a .egg archive or unpacked egg directory.
	KindEgg
)

// Distribution is an installable artifact found in a repository.
type Distribution struct {
	Kind     DistributionKind
	Filename string
	// Project is the normalized project name.
	Project    string
	Version    string
	PythonTags []string
	ABI        string
	Platform   string
	// Location is a local path or an http(s) URL.
	Location string
}

// ParseDistribution recognizes wheel and egg file names. Other names yield false.
func ParseDistribution(filename, location string) (Distribution, bool) {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))

	switch {
	case strings.HasSuffix(base, ".whl"):
		return parseWheel(base, location)
	case strings.HasSuffix(base, ".egg"):
		return parseEgg(base, location)
	default:
		return Distribution{}, false
	}
}

// name-version[-build]-python-abi-platform.whl
func parseWheel(base, location string) (Distribution, bool) {
	parts := strings.Split(strings.TrimSuffix(base, ".whl"), "-")
	if len(parts) != 5 && len(parts) != 6 {
		return Distribution{}, false
	}
	n := len(parts)

	return Distribution{
		Kind:       KindWheel,
		Filename:   base,
		Project:    NormalizeName(parts[0]),
		Version:    parts[1],
		PythonTags: strings.Split(parts[n-3], "."),
		ABI:        parts[n-2],
		Platform:   parts[n-1],
		Location:   location,
	}, true
}

// name-version-pyX.Y[-platform].egg
func parseEgg(base, location string) (Distribution, bool) {
	parts := strings.Split(strings.TrimSuffix(base, ".egg"), "-")
	if len(parts) < 3 || !strings.HasPrefix(parts[2], "py") {
		return Distribution{}, false
	}

	platform := "any"
	if len(parts) > 3 {
		platform = strings.Join(parts[3:], "-")
	}

	return Distribution{
		Kind:       KindEgg,
		Filename:   base,
		Project:    NormalizeName(parts[0]),
		Version:    parts[1],
		PythonTags: []string{strings.ReplaceAll(parts[2], ".", "")},
		ABI:        "none",
		Platform:   platform,
		Location:   location,
	}, true
}

// CompatibleWith reports whether the distribution can be loaded by the interpreter on this host.
func (d Distribution) CompatibleWith(identity Identity) bool {
	supported := false
	for _, tag := range d.PythonTags {
		if identity.SupportsPythonTag(tag) {
			supported = true
			break
		}
	}
	return supported && platformSupported(d.Platform, runtime.GOOS)
}

// Satisfies reports whether the distribution satisfies req.
func (d Distribution) Satisfies(req Requirement) bool {
	return req.Matches(d.Project, d.Version)
}

// Extra returns the extra key describing this distribution.
func (d Distribution) Extra() Extra {
	return Extra{Name: d.Project, Version: d.Version}
}

func platformSupported(platform, goos string) bool {
	if platform == "any" {
		return true
	}

	for _, tag := range strings.Split(platform, ".") {
		tag = strings.ToLower(tag)
		switch goos {
		case "linux":
			if strings.HasPrefix(tag, "linux") || strings.HasPrefix(tag, "manylinux") {
				return true
			}
		case "darwin":
			if strings.HasPrefix(tag, "macosx") {
				return true
			}
		case "windows":
			if strings.HasPrefix(tag, "win") {
				return true
			}
		}
	}
	return false
}
