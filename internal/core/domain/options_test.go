package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pexwrap/internal/core/domain"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := domain.DefaultOptions()
	assert.Equal(t, "__main__", opts.EntryPoint)
	assert.True(t, opts.ZipSafe)
	assert.Equal(t, "python2.7", opts.Python)
	assert.True(t, opts.PyPI)
	assert.True(t, opts.UseWheel)
	assert.Empty(t, opts.FindLinks)
	assert.Equal(t, ".pex", opts.PexRoot)
	assert.Equal(t, filepath.Join(".pex", "build"), opts.CacheDir())
	assert.Equal(t, filepath.Join(".pex", "interpreters"), opts.InterpreterCacheDir())
}

func TestBuildOptions_Shebang(t *testing.T) {
	t.Parallel()

	opts := domain.DefaultOptions()
	assert.Equal(t, "#!/usr/bin/env python2.7", opts.Shebang())

	opts.Python = "/opt/python/bin/python"
	assert.Equal(t, "#!/opt/python/bin/python", opts.Shebang())
}

func TestBuildOptions_Requirements(t *testing.T) {
	t.Parallel()

	opts := domain.DefaultOptions()
	assert.Equal(t, []string{domain.DefaultSetuptoolsRequirement, domain.DefaultWheelRequirement}, opts.Requirements())

	opts.UseWheel = false
	assert.Equal(t, []string{domain.DefaultSetuptoolsRequirement}, opts.Requirements())
}

func TestBuildOptions_PinnedExtras(t *testing.T) {
	t.Parallel()

	opts := domain.DefaultOptions()
	assert.Empty(t, opts.PinnedExtras())

	opts.SetuptoolsPath = "/opt/setuptools"
	opts.WheelPath = "/opt/wheel"
	assert.Equal(t, map[domain.Extra]string{
		domain.PinnedSetuptools: "/opt/setuptools",
		domain.PinnedWheel:      "/opt/wheel",
	}, opts.PinnedExtras())
}
