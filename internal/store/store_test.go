package store

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	exerciseStore(t, NewRedisStore(client))
}

func TestGormStoreRoundTrip(t *testing.T) {
	db, err := OpenSQLite("file::memory:?cache=shared")
	require.NoError(t, err)

	gormStore, err := NewGormStore(db)
	require.NoError(t, err)

	exerciseStore(t, gormStore)
}

func TestGormStorePreservesNonJSONValues(t *testing.T) {
	db, err := OpenSQLite("file::memory:")
	require.NoError(t, err)

	gormStore, err := NewGormStore(db)
	require.NoError(t, err)

	ctx := context.Background()
	token := "eyJuYW1lIjoiQWRhIn0="
	require.NoError(t, gormStore.Set(ctx, KeySession, token))

	value, ok, err := gormStore.Get(ctx, KeySession)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, token, value)
}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyUsers)
	require.NoError(t, err)
	require.False(t, ok, "expected missing key before first write")

	require.NoError(t, s.Set(ctx, KeyUsers, `[{"email":"ada@example.com"}]`))

	value, ok, err := s.Get(ctx, KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"email":"ada@example.com"}]`, value)

	require.NoError(t, s.Set(ctx, KeyUsers, `[]`))
	value, ok, err = s.Get(ctx, KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, value)

	require.NoError(t, s.Remove(ctx, KeyUsers))
	_, ok, err = s.Get(ctx, KeyUsers)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Remove(ctx, KeyUsers), "removing an absent key is not an error")
}
