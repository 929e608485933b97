package domain

import (
	"slices"
	"strings"
)

// Recognized manifest section names.
const (
	SectionModules           = "modules"
	SectionResources         = "resources"
	SectionNativeLibraries   = "nativeLibraries"
	SectionPrebuiltLibraries = "prebuiltLibraries"
	SectionRequirements      = "requirements"
)

// Section maps a destination path (or requirement, or distribution location) to its value.
type Section map[string]string

// Manifest maps section names to their bodies.
type Manifest map[string]Section

// Entry is a single key/value line of a manifest section.
type Entry struct {
	Key   string
	Value string
}

// ParseManifest parses the tab-indented manifest format:
//
//	modules:
//		dest.py:/path/to/src.py
//	resources:
//		data.txt:/path/to/data.txt
//
// A line takes part only when splitting it on ':' yields exactly two tokens.
// Lines without a leading tab open (or reset) a section; tab-indented lines are
// entries of the most recently opened section. Entries that appear before any
// section header are dropped.
func ParseManifest(text string) Manifest {
	manifest := make(Manifest)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		tokens := strings.Split(line, ":")
		if len(tokens) != 2 {
			continue
		}

		if !strings.HasPrefix(line, "\t") {
			current = tokens[0]
			manifest[current] = make(Section)
			continue
		}

		section, ok := manifest[current]
		if !ok {
			continue
		}
		section[tokens[0][1:]] = tokens[1]
	}

	return manifest
}

// UnwrapQuotes strips one layer of surrounding double quotes, which some build rule
// invocations add around the whole manifest.
func UnwrapQuotes(text string) string {
	if !strings.HasPrefix(text, `"`) || !strings.HasSuffix(text, `"`) {
		return text
	}
	if len(text) < 2 {
		return ""
	}
	return text[1 : len(text)-1]
}

// Section returns the named section, or nil when the manifest does not declare it.
func (m Manifest) Section(name string) Section {
	return m[name]
}

// Has reports whether the manifest declares the named section.
func (m Manifest) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Keys returns the section keys in sorted order.
func (s Section) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Entries returns the section entries sorted by key.
func (s Section) Entries() []Entry {
	entries := make([]Entry, 0, len(s))
	for _, k := range s.Keys() {
		entries = append(entries, Entry{Key: k, Value: s[k]})
	}
	return entries
}
