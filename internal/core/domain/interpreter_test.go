package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pexwrap/internal/core/domain"
)

func TestParseIdentity(t *testing.T) {
	t.Parallel()

	id, err := domain.ParseIdentity("CPython 2 7 18\n")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{Implementation: "CPython", Major: 2, Minor: 7, Patch: 18}, id)
	assert.Equal(t, "2.7.18", id.Version())
	assert.Equal(t, "CPython-2.7.18", id.String())

	for _, line := range []string{"", "CPython 2 7", "CPython two 7 18", "CPython 2 7 -1", "a b c d e"} {
		_, err := domain.ParseIdentity(line)
		require.Error(t, err, line)
		assert.ErrorContains(t, err, domain.ErrInvalidIdentity.Error())
	}
}

func TestIdentity_PythonTags(t *testing.T) {
	t.Parallel()

	cpython := domain.Identity{Implementation: "CPython", Major: 2, Minor: 7, Patch: 18}
	assert.Equal(t, []string{"cp27", "py27", "py2"}, cpython.PythonTags())
	assert.True(t, cpython.SupportsPythonTag("py2"))
	assert.True(t, cpython.SupportsPythonTag("PY27"))
	assert.True(t, cpython.SupportsPythonTag("cp27"))
	assert.False(t, cpython.SupportsPythonTag("py3"))
	assert.False(t, cpython.SupportsPythonTag("pp27"))

	pypy := domain.Identity{Implementation: "PyPy", Major: 3, Minor: 9, Patch: 0}
	assert.Equal(t, "pp", pypy.Abbreviation())
	assert.True(t, pypy.SupportsPythonTag("pp39"))
	assert.Equal(t, "jy", domain.Identity{Implementation: "Jython"}.Abbreviation())
	assert.Equal(t, "ip", domain.Identity{Implementation: "IronPython"}.Abbreviation())
	assert.Equal(t, "graalpy", domain.Identity{Implementation: "GraalPy"}.Abbreviation())
}

func TestInterpreter_WithExtra(t *testing.T) {
	t.Parallel()

	id := domain.Identity{Implementation: "CPython", Major: 2, Minor: 7, Patch: 18}
	base := domain.NewInterpreter("/usr/bin/python2.7", id, nil)
	assert.Empty(t, base.Extras())

	setuptools := domain.Extra{Name: "setuptools", Version: "18.0.1"}
	wheel := domain.Extra{Name: "wheel", Version: "0.26.0"}

	withSetuptools := base.WithExtra(setuptools, "/cache/setuptools")
	withBoth := withSetuptools.WithExtra(wheel, "/cache/wheel")

	assert.Empty(t, base.Extras(), "base handle must not change")
	assert.Equal(t, map[domain.Extra]string{setuptools: "/cache/setuptools"}, withSetuptools.Extras())
	assert.Equal(t, map[domain.Extra]string{
		setuptools: "/cache/setuptools",
		wheel:      "/cache/wheel",
	}, withBoth.Extras())
	assert.Equal(t, base.Binary, withBoth.Binary)
	assert.Equal(t, id, withBoth.Identity)
}

func TestInterpreter_NewCopiesExtras(t *testing.T) {
	t.Parallel()

	extras := map[domain.Extra]string{domain.PinnedSetuptools: "/opt/setuptools"}
	interp := domain.NewInterpreter("python", domain.Identity{}, extras)
	extras[domain.PinnedWheel] = "/opt/wheel"

	assert.Len(t, interp.Extras(), 1)

	got := interp.Extras()
	delete(got, domain.PinnedSetuptools)
	assert.Len(t, interp.Extras(), 1)
}

func TestInterpreter_Satisfies(t *testing.T) {
	t.Parallel()

	interp := domain.NewInterpreter("python", domain.Identity{}, map[domain.Extra]string{
		domain.PinnedSetuptools: "/opt/setuptools",
		domain.PinnedWheel:      "/opt/wheel",
	})

	assert.True(t, interp.Satisfies(domain.MustParseRequirement(domain.DefaultSetuptoolsRequirement)))
	assert.False(t, interp.Satisfies(domain.MustParseRequirement(domain.DefaultWheelRequirement)))

	extra, location, ok := interp.Satisfying(domain.MustParseRequirement("wheel==0.23.0"))
	require.True(t, ok)
	assert.Equal(t, domain.PinnedWheel, extra)
	assert.Equal(t, "/opt/wheel", location)

	_, _, ok = interp.Satisfying(domain.MustParseRequirement("six"))
	assert.False(t, ok)
}
