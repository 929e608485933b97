package domain_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pexwrap/internal/core/domain"
)

func TestParseDistribution_Wheel(t *testing.T) {
	t.Parallel()

	dist, ok := domain.ParseDistribution("/dist/Six-1.16.0-py2.py3-none-any.whl", "/dist/Six-1.16.0-py2.py3-none-any.whl")
	require.True(t, ok)
	assert.Equal(t, domain.Distribution{
		Kind:       domain.KindWheel,
		Filename:   "Six-1.16.0-py2.py3-none-any.whl",
		Project:    "six",
		Version:    "1.16.0",
		PythonTags: []string{"py2", "py3"},
		ABI:        "none",
		Platform:   "any",
		Location:   "/dist/Six-1.16.0-py2.py3-none-any.whl",
	}, dist)

	withBuild, ok := domain.ParseDistribution("foo-1.0-1-cp27-cp27mu-manylinux1_x86_64.whl", "https://example.com/foo.whl")
	require.True(t, ok)
	assert.Equal(t, "1.0", withBuild.Version)
	assert.Equal(t, []string{"cp27"}, withBuild.PythonTags)
	assert.Equal(t, "cp27mu", withBuild.ABI)
	assert.Equal(t, "manylinux1_x86_64", withBuild.Platform)
	assert.Equal(t, "https://example.com/foo.whl", withBuild.Location)
}

func TestParseDistribution_Egg(t *testing.T) {
	t.Parallel()

	dist, ok := domain.ParseDistribution("setuptools-18.0.1-py2.7.egg", "/eggs/setuptools-18.0.1-py2.7.egg")
	require.True(t, ok)
	assert.Equal(t, domain.KindEgg, dist.Kind)
	assert.Equal(t, "setuptools", dist.Project)
	assert.Equal(t, "18.0.1", dist.Version)
	assert.Equal(t, []string{"py27"}, dist.PythonTags)
	assert.Equal(t, "any", dist.Platform)

	native, ok := domain.ParseDistribution("lxml-3.4-py2.7-linux-x86_64.egg", "")
	require.True(t, ok)
	assert.Equal(t, "linux-x86_64", native.Platform)
}

func TestParseDistribution_NotCandidate(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"six-1.16.0.tar.gz",
		"six.whl",
		"six-1.0-py2.whl",
		"six-1.0.egg",
		"six-1.0-cp27.egg",
		"README",
	} {
		_, ok := domain.ParseDistribution(name, name)
		assert.False(t, ok, name)
	}
}

func TestDistribution_CompatibleWith(t *testing.T) {
	t.Parallel()

	py27 := domain.Identity{Implementation: "CPython", Major: 2, Minor: 7, Patch: 18}

	universal, _ := domain.ParseDistribution("six-1.16.0-py2.py3-none-any.whl", "")
	assert.True(t, universal.CompatibleWith(py27))

	py3only, _ := domain.ParseDistribution("attrs-21.0-py3-none-any.whl", "")
	assert.False(t, py3only.CompatibleWith(py27))

	var hostTag, otherTag string
	switch runtime.GOOS {
	case "darwin":
		hostTag, otherTag = "macosx_10_9_x86_64", "win_amd64"
	case "windows":
		hostTag, otherTag = "win_amd64", "manylinux1_x86_64"
	default:
		hostTag, otherTag = "manylinux1_x86_64", "win_amd64"
	}

	host, _ := domain.ParseDistribution("ext-1.0-cp27-cp27mu-"+hostTag+".whl", "")
	assert.True(t, host.CompatibleWith(py27))

	other, _ := domain.ParseDistribution("ext-1.0-cp27-cp27mu-"+otherTag+".whl", "")
	assert.False(t, other.CompatibleWith(py27))
}

func TestDistribution_Satisfies(t *testing.T) {
	t.Parallel()

	dist, _ := domain.ParseDistribution("wheel-0.26.0-py2.py3-none-any.whl", "")
	assert.True(t, dist.Satisfies(domain.MustParseRequirement(domain.DefaultWheelRequirement)))
	assert.False(t, dist.Satisfies(domain.MustParseRequirement("wheel<0.25")))
	assert.Equal(t, domain.Extra{Name: "wheel", Version: "0.26.0"}, dist.Extra())
}
