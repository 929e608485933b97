package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pexwrap/internal/adapters/cas"
	"go.trai.ch/pexwrap/internal/core/domain"
)

func sampleEntry() domain.InterpreterCacheEntry {
	return domain.InterpreterCacheEntry{
		Key:         "0123456789abcdef",
		Binary:      "/usr/bin/python2.7",
		Identity:    domain.Identity{Implementation: "CPython", Major: 2, Minor: 7, Patch: 18},
		Requirement: "setuptools>=2.2,<20",
		Extra:       domain.Extra{Name: "setuptools", Version: "18.0.1"},
		Location:    "/cache/setuptools-18.0.1-py2.py3-none-any.whl",
	}
}

func TestStore_PutAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "interpreters")
	store := cas.NewStore()
	entry := sampleEntry()

	require.NoError(t, store.Put(dir, entry))

	got, err := store.Get(dir, entry.Key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry, *got)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1, "temporary files must not be left behind")
	assert.Equal(t, entry.Key+".json", files[0].Name())
}

func TestStore_Overwrite(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()
	entry := sampleEntry()
	require.NoError(t, store.Put(dir, entry))

	entry.Location = "/elsewhere"
	require.NoError(t, store.Put(dir, entry))

	got, err := store.Get(dir, entry.Key)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", got.Location)
}

func TestStore_Miss(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir(), "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = cas.NewStore().Get(filepath.Join(t.TempDir(), "absent"), "deadbeef")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deadbeef.json"), []byte("{not json"), domain.FilePerm))

	_, err := cas.NewStore().Get(dir, "deadbeef")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheUnmarshalFailed.Error())
}

func TestStore_KeyMismatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deadbeef.json"), []byte(`{"key":"other"}`), domain.FilePerm))

	_, err := cas.NewStore().Get(dir, "deadbeef")
	require.Error(t, err)
}

func TestStore_RejectsUnsafeKeys(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	for _, key := range []string{"", "../escape", "a/b", "x.json"} {
		entry := sampleEntry()
		entry.Key = key
		require.Error(t, store.Put(dir, entry), key)

		_, err := store.Get(dir, key)
		require.Error(t, err, key)
	}
}
