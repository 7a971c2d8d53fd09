package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dwikikusuma/food-storefront/internal/cart/app"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Storage, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStorage(client), mr
}

func TestGet_Miss(t *testing.T) {
	s, _ := setupTestRedis(t)

	_, err := s.Get(context.Background(), "foodStoreCart")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestSetGetDelete(t *testing.T) {
	s, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "foodStoreCart", []byte(`{"p4":1}`)))

	raw, err := mr.Get("storefront:foodStoreCart")
	require.NoError(t, err)
	assert.Equal(t, `{"p4":1}`, raw)
	assert.Zero(t, mr.TTL("storefront:foodStoreCart"))

	got, err := s.Get(ctx, "foodStoreCart")
	require.NoError(t, err)
	assert.Equal(t, `{"p4":1}`, string(got))

	require.NoError(t, s.Delete(ctx, "foodStoreCart"))
	assert.False(t, mr.Exists("storefront:foodStoreCart"))
}

func TestGet_ServerDown(t *testing.T) {
	s, mr := setupTestRedis(t)
	mr.Close()

	_, err := s.Get(context.Background(), "foodStoreCart")
	require.Error(t, err)
	assert.NotErrorIs(t, err, app.ErrNotFound)
}
