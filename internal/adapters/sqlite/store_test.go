package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tally/internal/adapters/kvstate"
	"tally/internal/domain"
)

// newTestStore creates a new in-memory SQLite store for testing
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(":memory:", nil)
	require.NoError(t, err, "failed to open test store")

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestOpen_WritesSchemaVersion(t *testing.T) {
	s := newTestStore(t)

	version, err := s.SchemaVersion()
	require.NoError(t, err)
	require.Equal(t, schemaVersion, version)
}

func TestGet_Missing(t *testing.T) {
	s := newTestStore(t)

	value, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, value)
}

func TestSetGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("one")))
	require.NoError(t, s.Set(ctx, "k", []byte("two")))

	value, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "two", string(value))
}

func TestSetMany(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
		"c": nil,
	}))

	for key, want := range map[string]string{"a": "1", "b": "2", "c": ""} {
		value, ok, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "key %s missing", key)
		require.Equal(t, want, string(value))
	}
}

func TestSetMany_CancelledContextWritesNothing(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.SetMany(ctx, map[string][]byte{"a": []byte("1")})
	require.Error(t, err)

	_, ok, err := s.Get(context.Background(), "a")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tally.db")

	s, err := Open(path, nil)
	require.NoError(t, err)

	board := domain.DefaultBoard()
	board.AddCounter()
	require.NoError(t, board.CurrentList().Adjust(1, 12))
	require.NoError(t, kvstate.NewStore(s).Save(ctx, board))
	require.NoError(t, s.Close())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	loaded, err := kvstate.NewStore(reopened).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.CurrentList().Len())
	require.Equal(t, int64(12), loaded.CurrentList().Counters[1].Value)
	require.Equal(t, 2, loaded.NextCounterID)
}

func TestDefaultPath(t *testing.T) {
	require.Equal(t, filepath.Join("/data", "tally.db"), DefaultPath("/data"))
}
