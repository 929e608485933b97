package domain

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Identity describes a concrete Python interpreter implementation and version.
type Identity struct {
	Implementation string `json:"implementation"`
	Major          int    `json:"major"`
	Minor          int    `json:"minor"`
	Patch          int    `json:"patch"`
}

// ParseIdentity parses the "<implementation> <major> <minor> <patch>" line reported by
// an interpreter probe, e.g. "CPython 2 7 18".
func ParseIdentity(line string) (Identity, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Identity{}, zerr.With(ErrInvalidIdentity, "identity", line)
	}

	parts := make([]int, 3)
	for i, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return Identity{}, zerr.With(ErrInvalidIdentity, "identity", line)
		}
		parts[i] = n
	}

	return Identity{
		Implementation: fields[0],
		Major:          parts[0],
		Minor:          parts[1],
		Patch:          parts[2],
	}, nil
}

// Version returns the dotted interpreter version.
func (i Identity) Version() string {
	return fmt.Sprintf("%d.%d.%d", i.Major, i.Minor, i.Patch)
}

func (i Identity) String() string {
	return i.Implementation + "-" + i.Version()
}

// Abbreviation returns the short implementation tag used in wheel file names.
func (i Identity) Abbreviation() string {
	switch strings.ToLower(i.Implementation) {
	case "cpython":
		return "cp"
	case "pypy":
		return "pp"
	case "jython":
		return "jy"
	case "ironpython":
		return "ip"
	default:
		return strings.ToLower(i.Implementation)
	}
}

// PythonTags returns the python tags this interpreter can load, most specific first.
func (i Identity) PythonTags() []string {
	mm := strconv.Itoa(i.Major) + strconv.Itoa(i.Minor)
	return []string{
		i.Abbreviation() + mm,
		"py" + mm,
		"py" + strconv.Itoa(i.Major),
	}
}

// SupportsPythonTag reports whether the interpreter can load code built for tag.
func (i Identity) SupportsPythonTag(tag string) bool {
	return slices.Contains(i.PythonTags(), strings.ToLower(tag))
}

// Extra names a distribution made available to an interpreter outside its own site-packages.
type Extra struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (e Extra) String() string {
	return e.Name + "==" + e.Version
}

// Interpreter is a handle to a concrete interpreter plus the extra distributions
// resolved for it. Handles are immutable; WithExtra returns a refined copy.
type Interpreter struct {
	Binary   string
	Identity Identity
	extras   map[Extra]string
}

// NewInterpreter creates a handle for binary with the given identity and extra locations.
func NewInterpreter(binary string, identity Identity, extras map[Extra]string) *Interpreter {
	copied := make(map[Extra]string, len(extras))
	maps.Copy(copied, extras)
	return &Interpreter{
		Binary:   binary,
		Identity: identity,
		extras:   copied,
	}
}

// Extras returns a copy of the extra distribution locations.
func (i *Interpreter) Extras() map[Extra]string {
	return maps.Clone(i.extras)
}

// WithExtra returns a copy of the handle with one more extra attached.
// Extras already present are kept.
func (i *Interpreter) WithExtra(extra Extra, location string) *Interpreter {
	refined := NewInterpreter(i.Binary, i.Identity, i.extras)
	refined.extras[extra] = location
	return refined
}

// Satisfying returns an extra of the handle that satisfies req.
func (i *Interpreter) Satisfying(req Requirement) (Extra, string, bool) {
	keys := slices.SortedFunc(maps.Keys(i.extras), func(a, b Extra) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, extra := range keys {
		if req.Matches(extra.Name, extra.Version) {
			return extra, i.extras[extra], true
		}
	}
	return Extra{}, "", false
}

// Satisfies reports whether an extra of the handle satisfies req.
func (i *Interpreter) Satisfies(req Requirement) bool {
	_, _, ok := i.Satisfying(req)
	return ok
}
