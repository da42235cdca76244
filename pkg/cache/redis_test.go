package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewClientFromRedis(rc), mr
}

func TestSetAndGet(t *testing.T) {
	client, _ := setupTestCache(t)
	ctx := context.Background()

	t.Run("Success - Set then get", func(t *testing.T) {
		err := client.Set(ctx, "experiments:active:pricing", `[{"id":1}]`, time.Minute)
		require.NoError(t, err)

		val, err := client.Get(ctx, "experiments:active:pricing")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, val)
	})

	t.Run("Failure - Missing key returns redis.Nil", func(t *testing.T) {
		_, err := client.Get(ctx, "missing")
		assert.ErrorIs(t, err, redis.Nil)
	})
}

func TestExists(t *testing.T) {
	client, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", time.Minute))

	ok, err := client.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.Exists(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeletePattern(t *testing.T) {
	client, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "experiments:active:pricing", "a", time.Minute))
	require.NoError(t, client.Set(ctx, "experiments:active:ui_component", "b", time.Minute))
	require.NoError(t, client.Set(ctx, "unrelated", "c", time.Minute))

	err := client.DeletePattern(ctx, "experiments:active:*")
	require.NoError(t, err)

	_, err = client.Get(ctx, "experiments:active:pricing")
	assert.ErrorIs(t, err, redis.Nil)
	_, err = client.Get(ctx, "experiments:active:ui_component")
	assert.ErrorIs(t, err, redis.Nil)

	val, err := client.Get(ctx, "unrelated")
	require.NoError(t, err)
	assert.Equal(t, "c", val)
}
