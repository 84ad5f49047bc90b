package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameforge/internal/config"
)

func newRedisTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, "test", ttl)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisTestStore(t, 0)

	project := createSampleProject("proj-1", "Redis Game", time.Now())
	require.NoError(t, store.Save(ctx, project))

	assert.True(t, mr.Exists("test:project:proj-1"))
	members, err := mr.ZMembers("test:projects")
	require.NoError(t, err)
	assert.Equal(t, []string{"proj-1"}, members)

	loaded, err := store.Load(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, project, loaded)
	assert.Equal(t, "test", store.BasePath())
}

func TestRedisStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisTestStore(t, 0)

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrProjectNotFound)

	_, err = store.Load(ctx, "../x")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestRedisStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisTestStore(t, 0)

	empty, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	older := createSampleProject("a-older", "Older", base)
	newer := createSampleProject("b-newer", "Newer", base.Add(time.Minute))
	require.NoError(t, store.Save(ctx, newer))
	require.NoError(t, store.Save(ctx, older))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "b-newer", summaries[0].ID)
	assert.Equal(t, "a-older", summaries[1].ID)
	assert.Equal(t, "Newer", summaries[0].Title)
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisTestStore(t, 0)

	require.NoError(t, store.Save(ctx, createSampleProject("proj-1", "x", time.Now())))
	require.NoError(t, store.Delete(ctx, "proj-1"))

	assert.False(t, mr.Exists("test:project:proj-1"))
	_, err := store.Load(ctx, "proj-1")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestRedisStore_TTLPrunesIndex(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisTestStore(t, time.Hour)

	require.NoError(t, store.Save(ctx, createSampleProject("proj-1", "x", time.Now())))
	assert.Equal(t, time.Hour, mr.TTL("test:project:proj-1"))

	mr.FastForward(2 * time.Hour)

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	members, err := mr.ZMembers("test:projects")
	if err == nil {
		assert.Empty(t, members)
	}
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := Open(context.Background(), config.StorageConfig{
		Driver: "redis",
		Redis:  config.RedisConfig{Addr: mr.Addr(), Prefix: "gf"},
	})
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, "gf", store.BasePath())

	addr := mr.Addr()
	mr.Close()
	_, err = Open(context.Background(), config.StorageConfig{
		Driver: "redis",
		Redis:  config.RedisConfig{Addr: addr},
	})
	assert.Error(t, err)
}
