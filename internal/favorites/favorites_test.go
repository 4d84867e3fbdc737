package favorites

import (
	"errors"
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/gallery/internal/storage"
)

type failingStorage struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStorage) Get(string) (string, bool, error) { return "", false, f.getErr }
func (f *failingStorage) Set(string, string) error {
	f.sets++
	return f.setErr
}
func (f *failingStorage) Close() error { return nil }

func TestLoad_MissingKeyIsEmpty(t *testing.T) {
	s := New(storage.NewMemory())
	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
}

func TestLoad_ReadsPersistedIDs(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(Key, `["a1","a3"]`))

	s := New(mem)
	require.NoError(t, s.Load())
	assert.True(t, s.Has("a1"))
	assert.True(t, s.Has("a3"))
	assert.False(t, s.Has("a2"))
	assert.Equal(t, []string{"a1", "a3"}, s.IDs())
}

func TestLoad_MalformedFallsBackToEmpty(t *testing.T) {
	for _, raw := range []string{`{`, `{"a1":true}`, `[1,2]`, `"a1"`} {
		mem := storage.NewMemory()
		require.NoError(t, mem.Set(Key, raw))

		s := New(mem)
		err := s.Load()
		require.ErrorIs(t, err, ErrMalformed, "raw=%s", raw)
		assert.Equal(t, 0, s.Len())

		// The store keeps working after a bad load.
		require.NoError(t, s.Toggle("a1"))
		assert.True(t, s.Has("a1"))
	}
}

func TestLoad_StorageErrorFallsBackToEmpty(t *testing.T) {
	boom := errors.New("disk gone")
	s := New(&failingStorage{getErr: boom})
	err := s.Load()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_DropsDuplicates(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(Key, `["a1","a1","a2"]`))
	s := New(mem)
	require.NoError(t, s.Load())
	assert.Equal(t, []string{"a1", "a2"}, s.IDs())
}

func TestToggle_Scenario(t *testing.T) {
	mem := storage.NewMemory()
	s := New(mem)

	require.NoError(t, s.Toggle("a1"))
	assert.Equal(t, []string{"a1"}, s.IDs())
	raw, ok, _ := mem.Get(Key)
	require.True(t, ok)
	assert.JSONEq(t, `["a1"]`, raw)

	require.NoError(t, s.Toggle("a1"))
	assert.Empty(t, s.IDs())
	raw, _, _ = mem.Get(Key)
	assert.JSONEq(t, `[]`, raw)
}

func TestToggle_EveryMutationPersists(t *testing.T) {
	fs := &failingStorage{}
	s := New(fs)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Toggle("a"+strconv.Itoa(i)))
	}
	assert.Equal(t, 5, fs.sets)
}

func TestToggle_WriteFailureKeepsChange(t *testing.T) {
	boom := errors.New("read-only")
	s := New(&failingStorage{setErr: boom})
	err := s.Toggle("a1")
	require.ErrorIs(t, err, boom)
	assert.True(t, s.Has("a1"))
}

func TestToggle_SelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		s := New(storage.NewMemory())
		n := rng.Intn(8)
		for i := 0; i < n; i++ {
			require.NoError(t, s.Toggle("a"+strconv.Itoa(rng.Intn(10))))
		}
		before := sorted(s.IDs())

		id := "a" + strconv.Itoa(rng.Intn(12))
		require.NoError(t, s.Toggle(id))
		require.NoError(t, s.Toggle(id))

		assert.Equal(t, before, sorted(s.IDs()), "round %d id %s", round, id)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	sets := [][]string{
		nil,
		{"a1"},
		{"a2", "a1", "x-99"},
		{"with \"quotes\"", "ユニコード"},
	}
	for _, ids := range sets {
		raw, err := Encode(ids)
		require.NoError(t, err)
		got, err := Decode(raw)
		require.NoError(t, err)
		assert.ElementsMatch(t, ids, got)
	}
}

func TestStore_RoundTripThroughStorage(t *testing.T) {
	mem := storage.NewMemory()
	first := New(mem)
	for _, id := range []string{"a3", "a1", "a2"} {
		require.NoError(t, first.Toggle(id))
	}

	second := New(mem)
	require.NoError(t, second.Load())
	assert.Equal(t, first.IDs(), second.IDs())
}

func TestIDs_ReturnsCopy(t *testing.T) {
	s := New(storage.NewMemory())
	require.NoError(t, s.Toggle("a1"))
	ids := s.IDs()
	ids[0] = "zz"
	assert.True(t, s.Has("a1"))
	assert.Equal(t, []string{"a1"}, s.IDs())
}

func sorted(ids []string) []string {
	out := append([]string{}, ids...)
	sort.Strings(out)
	return out
}
