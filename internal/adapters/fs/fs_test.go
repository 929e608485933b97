package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pexwrap/internal/adapters/fs"
	"go.trai.ch/pexwrap/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func skipWithoutSymlinks(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "__init__.py"), "")
	writeFile(t, filepath.Join(root, "pkg", "mod.py"), "x = 1")
	writeFile(t, filepath.Join(root, "pkg", "__pycache__", "mod.cpython-27.pyc"), "")
	writeFile(t, filepath.Join(root, ".git", "config"), "")
	writeFile(t, filepath.Join(root, "skip.pyc"), "")
	writeFile(t, filepath.Join(root, "README"), "")

	files := slices.Collect(fs.NewWalker().WalkFiles(root, []string{"*.pyc"}))

	assert.Equal(t, []string{
		filepath.Join(root, "README"),
		filepath.Join(root, "pkg", "__init__.py"),
		filepath.Join(root, "pkg", "mod.py"),
	}, files)
}

func TestWalker_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a"), "")
	writeFile(t, filepath.Join(root, "b"), "")

	var seen []string
	for path := range fs.NewWalker().WalkFiles(root, nil) {
		seen = append(seen, path)
		break
	}
	assert.Equal(t, []string{filepath.Join(root, "a")}, seen)
}

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	writeFile(t, a, "content")
	writeFile(t, b, "content")
	writeFile(t, c, "other")

	h := fs.NewHasher(fs.NewWalker())

	ha, err := h.HashFile(a)
	require.NoError(t, err)
	hb, err := h.HashFile(b)
	require.NoError(t, err)
	hc, err := h.HashFile(c)
	require.NoError(t, err)

	assert.Len(t, ha, 16)
	assert.Equal(t, ha, hb)
	assert.NotEqual(t, ha, hc)

	_, err = h.HashFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}

func TestHasher_HashTree(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())

	first := t.TempDir()
	second := t.TempDir()
	for _, root := range []string{first, second} {
		writeFile(t, filepath.Join(root, "pkg", "a.py"), "a")
		writeFile(t, filepath.Join(root, "pkg", "b.py"), "b")
	}

	h1, err := h.HashTree(first)
	require.NoError(t, err)
	h2, err := h.HashTree(second)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "hash must not depend on the tree location")

	require.NoError(t, os.Rename(filepath.Join(second, "pkg", "b.py"), filepath.Join(second, "pkg", "c.py")))
	h3, err := h.HashTree(second)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3, "hash must cover file names")
}

func TestResolver_NotALink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.py")
	writeFile(t, path, "")

	got, err := fs.NewResolver().Dereference(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	missing := filepath.Join(dir, "missing.py")
	got, err = fs.NewResolver().Dereference(missing)
	require.NoError(t, err)
	assert.Equal(t, missing, got)
}

func TestResolver_Chain(t *testing.T) {
	skipWithoutSymlinks(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "target.py")
	writeFile(t, target, "")

	// link3 -> link2 -> link1 -> target.py
	prev := "target.py"
	for i := 1; i <= 3; i++ {
		name := "link" + strconv.Itoa(i)
		require.NoError(t, os.Symlink(prev, filepath.Join(dir, name)))
		prev = name
	}

	got, err := fs.NewResolver().Dereference(filepath.Join(dir, "link3"))
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestResolver_AbsoluteTarget(t *testing.T) {
	skipWithoutSymlinks(t)

	dir := t.TempDir()
	other := t.TempDir()
	target := filepath.Join(other, "data.txt")
	writeFile(t, target, "")
	link := filepath.Join(dir, "data.txt")
	require.NoError(t, os.Symlink(target, link))

	got, err := fs.NewResolver().Dereference(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestResolver_KeepsParentLinks(t *testing.T) {
	skipWithoutSymlinks(t)

	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	writeFile(t, filepath.Join(realDir, "mod.py"), "")
	require.NoError(t, os.Symlink("real", filepath.Join(dir, "alias")))

	path := filepath.Join(dir, "alias", "mod.py")
	got, err := fs.NewResolver().Dereference(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestResolver_Cycle(t *testing.T) {
	skipWithoutSymlinks(t)

	dir := t.TempDir()
	require.NoError(t, os.Symlink("b", filepath.Join(dir, "a")))
	require.NoError(t, os.Symlink("a", filepath.Join(dir, "b")))

	_, err := fs.NewResolver().Dereference(filepath.Join(dir, "a"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSymlinkCycle.Error())

	require.NoError(t, os.Symlink("self", filepath.Join(dir, "self")))
	_, err = fs.NewResolver().Dereference(filepath.Join(dir, "self"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSymlinkCycle.Error())
}

func TestLocator_ExistingPath(t *testing.T) {
	dir := t.TempDir()
	python := filepath.Join(dir, "python")
	writeFile(t, python, "")

	got, err := fs.NewLocatorWithEnv(func(string) string { return "" }).Locate(python, "")
	require.NoError(t, err)
	assert.Equal(t, python, got)
}

func TestLocator_SearchesPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not used on windows")
	}

	empty := t.TempDir()
	bin := t.TempDir()
	notExec := t.TempDir()
	writeFile(t, filepath.Join(notExec, "python2.7"), "")
	require.NoError(t, os.WriteFile(filepath.Join(bin, "python2.7"), []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec // Test executable

	env := func(key string) string {
		if key == "PATH" {
			return empty + string(filepath.ListSeparator) + notExec + string(filepath.ListSeparator) + bin
		}
		return ""
	}
	got, err := fs.NewLocatorWithEnv(env).Locate("python2.7", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bin, "python2.7"), got)

	fallback, err := fs.NewLocatorWithEnv(func(string) string { return "" }).Locate("python2.7", bin)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bin, "python2.7"), fallback)

	_, err = fs.NewLocatorWithEnv(env).Locate("python9", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInterpreterNotFound.Error())

	_, err = fs.NewLocatorWithEnv(env).Locate(filepath.Join(empty, "python2.7"), "")
	require.Error(t, err)
}

func TestPublisher_Publish(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "app.pex")
	writeFile(t, output+domain.TempSuffix, "stale")

	err := fs.NewPublisher().Publish(output, func(tmp string) error {
		assert.Equal(t, output+domain.TempSuffix, tmp)
		assert.NoFileExists(t, tmp, "stale temp file must be removed before writing")
		return os.WriteFile(tmp, []byte("fresh"), domain.FilePerm)
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
	assert.NoFileExists(t, output+domain.TempSuffix)
}

func TestPublisher_FailureLeavesOutputUntouched(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "app.pex")
	writeFile(t, output, "previous")

	writeErr := os.ErrClosed
	err := fs.NewPublisher().Publish(output, func(tmp string) error {
		require.NoError(t, os.WriteFile(tmp, []byte("half"), domain.FilePerm))
		return writeErr
	})
	require.ErrorIs(t, err, writeErr)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
	assert.NoFileExists(t, output+domain.TempSuffix)
}
