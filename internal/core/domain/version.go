package domain

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// pythonVersionPattern matches the release, pre-release and post-release parts of a
// Python package version such as "1.0", "2.0.0rc1" or "1.2.post3".
var pythonVersionPattern = regexp.MustCompile(
	`^v?(\d+(?:\.\d+)*)(?:[._-]?(a|b|c|rc|alpha|beta|pre|preview|dev)[._-]?(\d*))?(?:[._-]?(post|rev|r)[._-]?(\d*))?$`,
)

// noPost marks a version that is not a post-release.
const noPost = -1

// Version is a parsed Python package version.
// The first three release components and the pre-release are held as a semantic version.
// Components past the third and the post-release number are compared explicitly.
type Version struct {
	core    *semver.Version
	release []uint64
	pre     string
	preNum  uint64
	post    int64
}

// ParseVersion parses a Python package version.
func ParseVersion(raw string) (Version, error) {
	m := pythonVersionPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(raw)))
	if m == nil {
		return Version{}, zerr.With(ErrInvalidVersion, "version", raw)
	}

	parts := strings.Split(m[1], ".")
	release := make([]uint64, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "version", raw)
		}
		release = append(release, n)
	}

	v := Version{release: release, post: noPost}

	core := []string{"0", "0", "0"}
	for i := range min(len(release), 3) {
		core[i] = strconv.FormatUint(release[i], 10)
	}
	normalized := strings.Join(core, ".")

	if m[2] != "" {
		v.pre = preReleaseTag(m[2])
		v.preNum, _ = strconv.ParseUint(orZero(m[3]), 10, 64)
		normalized += "-" + preReleaseOrder(v.pre) + "." + strconv.FormatUint(v.preNum, 10)
	}
	if m[4] != "" {
		v.post, _ = strconv.ParseInt(orZero(m[5]), 10, 64)
	}

	sv, err := semver.NewVersion(normalized)
	if err != nil {
		return Version{}, zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "version", raw)
	}
	v.core = sv
	return v, nil
}

// Compare returns -1, 0 or 1 when v orders before, with or after o.
// Releases are compared component by component with missing components read as zero,
// then pre-releases (dev < a < b < rc < final), then post-releases.
func (v Version) Compare(o Version) int {
	if c := compareRelease(v.release, o.release); c != 0 {
		return c
	}
	if c := v.core.Compare(o.core); c != 0 {
		return c
	}
	return cmp.Compare(v.post, o.post)
}

// LessThan reports whether v orders before o.
func (v Version) LessThan(o Version) bool { return v.Compare(o) < 0 }

// GreaterThan reports whether v orders after o.
func (v Version) GreaterThan(o Version) bool { return v.Compare(o) > 0 }

// Equal reports whether v and o are the same version.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// IsPrerelease reports whether v is a development or pre-release.
func (v Version) IsPrerelease() bool { return v.pre != "" }

// Release returns a copy of the release components.
func (v Version) Release() []uint64 { return slices.Clone(v.release) }

// String returns the normalized form, with at least three release components.
func (v Version) String() string {
	parts := make([]string, 0, max(len(v.release), 3))
	for i := range max(len(v.release), 3) {
		var n uint64
		if i < len(v.release) {
			n = v.release[i]
		}
		parts = append(parts, strconv.FormatUint(n, 10))
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, "."))
	switch v.pre {
	case "":
	case "dev":
		b.WriteString(".dev" + strconv.FormatUint(v.preNum, 10))
	default:
		b.WriteString(v.pre + strconv.FormatUint(v.preNum, 10))
	}
	if v.post != noPost {
		b.WriteString(".post" + strconv.FormatInt(v.post, 10))
	}
	return b.String()
}

func compareRelease(a, b []uint64) int {
	for i := range max(len(a), len(b)) {
		var x, y uint64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
	}
	return 0
}

func preReleaseTag(tag string) string {
	switch tag {
	case "alpha":
		return "a"
	case "beta":
		return "b"
	case "c", "pre", "preview":
		return "rc"
	default:
		return tag
	}
}

// preReleaseOrder maps a tag to a semver identifier that sorts in Python order.
// Development releases sort before alphas.
func preReleaseOrder(tag string) string {
	if tag == "dev" {
		return "0dev"
	}
	return tag
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
