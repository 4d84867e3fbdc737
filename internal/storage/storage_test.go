package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func backends(t *testing.T) map[string]Storage {
	t.Helper()
	dir := t.TempDir()

	file, err := Open(BackendFile, filepath.Join(dir, "nested", "storage.json"))
	require.NoError(t, err)
	db, err := Open(BackendSQLite, filepath.Join(dir, "storage.db"))
	require.NoError(t, err)
	mem, err := Open(BackendMemory, "")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = file.Close()
		_ = db.Close()
		_ = mem.Close()
	})
	return map[string]Storage{"file": file, "sqlite": db, "memory": mem}
}

func TestStorage_GetSetRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("k", `["a1"]`))
			v, ok, err := s.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["a1"]`, v)

			// Last write wins.
			require.NoError(t, s.Set("k", `[]`))
			v, _, err = s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, `[]`, v)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("redis", "x")
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestOpen_DefaultsToFile(t *testing.T) {
	s, err := Open("", filepath.Join(t.TempDir(), "s.json"))
	require.NoError(t, err)
	_, isFile := s.(*File)
	assert.True(t, isFile)
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	first, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("a", "1"))
	require.NoError(t, first.Set("b", "2"))

	second, err := NewFile(path)
	require.NoError(t, err)
	v, ok, err := second.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f, err := NewFile(path)
	require.NoError(t, err)

	_, _, err = f.Get("k")
	require.Error(t, err)

	// Writes recover the file.
	require.NoError(t, f.Set("k", "v"))
	v, ok, err := f.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestFile_EmptyPath(t *testing.T) {
	_, err := NewFile(" ")
	require.Error(t, err)
}

func TestSQLite_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.db")
	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("k", "v"))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()
	v, ok, err := second.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestSQLite_CloseReleasesGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, err := OpenSQLite(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	_, _, err = s.Get("k")
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
