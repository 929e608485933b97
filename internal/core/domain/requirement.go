package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var (
	requirementNamePattern = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9._-]*)\s*(?:\[[^\]]*\])?\s*(.*)$`)
	nameSeparatorPattern   = regexp.MustCompile(`[-_.]+`)
	specifierPattern       = regexp.MustCompile(`^(===|==|~=|!=|<=|>=|<|>)?\s*(\S+)$`)
)

// Requirement is a parsed package requirement such as "setuptools>=2.2,<20".
type Requirement struct {
	// Raw is the requirement as written.
	Raw string
	// Name is the normalized project name.
	Name string
	// Specifier is the version specifier as written, empty when any version is accepted.
	Specifier string

	clauses []clause
	// pre is set when a clause names a pre-release, which admits pre-release candidates.
	pre bool
}

// ParseRequirement parses a requirement string. Environment markers after ';' are ignored.
func ParseRequirement(raw string) (Requirement, error) {
	text := strings.TrimSpace(raw)
	if idx := strings.Index(text, ";"); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}

	m := requirementNamePattern.FindStringSubmatch(text)
	if m == nil {
		return Requirement{}, zerr.With(ErrInvalidRequirement, "requirement", raw)
	}

	req := Requirement{
		Raw:       raw,
		Name:      NormalizeName(m[1]),
		Specifier: strings.TrimSpace(strings.Trim(strings.TrimSpace(m[2]), "()")),
	}

	clauses, err := parseSpecifier(req.Specifier)
	if err != nil {
		return Requirement{}, zerr.With(err, "requirement", raw)
	}
	req.clauses = clauses
	for _, c := range clauses {
		if c.prefix == nil && c.version.IsPrerelease() {
			req.pre = true
		}
	}

	return req, nil
}

// MustParseRequirement is like ParseRequirement but panics on error.
// It is intended for requirement constants.
func MustParseRequirement(raw string) Requirement {
	req, err := ParseRequirement(raw)
	if err != nil {
		panic(err)
	}
	return req
}

// NormalizeName returns the canonical form of a project name: lower case with runs of
// '-', '_' and '.' collapsed into a single '-'.
func NormalizeName(name string) string {
	return nameSeparatorPattern.ReplaceAllString(strings.ToLower(name), "-")
}

// Matches reports whether the named project at the given version satisfies the requirement.
func (r Requirement) Matches(name, version string) bool {
	if NormalizeName(name) != r.Name {
		return false
	}
	v, err := ParseVersion(version)
	if err != nil {
		return false
	}
	if v.IsPrerelease() && !r.pre {
		return false
	}
	for _, c := range r.clauses {
		if !c.check(v) {
			return false
		}
	}
	return true
}

func (r Requirement) String() string {
	return r.Raw
}

// clause is one comparison of a specifier list such as ">=2.2" or "==1.4.*".
type clause struct {
	op      string
	version Version
	// prefix holds the release components of a wildcard version, nil otherwise.
	prefix []uint64
}

func (c clause) check(v Version) bool {
	if c.prefix != nil {
		matched := hasReleasePrefix(v, c.prefix)
		if c.op == "!=" {
			return !matched
		}
		return matched
	}

	d := v.Compare(c.version)
	switch c.op {
	case "==":
		return d == 0
	case "!=":
		return d != 0
	case "<":
		return d < 0
	case "<=":
		return d <= 0
	case ">":
		return d > 0
	default:
		return d >= 0
	}
}

func hasReleasePrefix(v Version, prefix []uint64) bool {
	release := v.Release()
	for i, want := range prefix {
		var got uint64
		if i < len(release) {
			got = release[i]
		}
		if got != want {
			return false
		}
	}
	return true
}

// parseSpecifier parses a PEP 440 specifier list into comparison clauses.
// "~=X.Y" becomes ">=X.Y" plus "==X.*" and "~=X.Y.Z" becomes ">=X.Y.Z" plus "==X.Y.*".
func parseSpecifier(spec string) ([]clause, error) {
	if spec == "" {
		return nil, nil
	}

	var out []clause
	for _, text := range strings.Split(spec, ",") {
		text = strings.TrimSpace(text)
		m := specifierPattern.FindStringSubmatch(text)
		if m == nil {
			return nil, zerr.With(ErrInvalidRequirement, "specifier", text)
		}

		op, raw := m[1], m[2]
		if op == "" || op == "===" {
			op = "=="
		}

		if base, ok := strings.CutSuffix(raw, ".*"); ok {
			if op != "==" && op != "!=" {
				return nil, zerr.With(ErrInvalidRequirement, "specifier", text)
			}
			v, err := ParseVersion(base)
			if err != nil {
				return nil, zerr.Wrap(err, ErrInvalidRequirement.Error())
			}
			out = append(out, clause{op: op, prefix: v.Release()})
			continue
		}

		v, err := ParseVersion(raw)
		if err != nil {
			return nil, zerr.Wrap(err, ErrInvalidRequirement.Error())
		}

		if op == "~=" {
			release := v.Release()
			prefix := release[:max(len(release)-1, 1)]
			out = append(out, clause{op: ">=", version: v}, clause{op: "==", prefix: prefix})
			continue
		}
		out = append(out, clause{op: op, version: v})
	}
	return out, nil
}
