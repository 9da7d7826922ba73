package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (IRedis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r := NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	require.NoError(t, r.Ping(ctx))

	_, err := r.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Set(ctx, "k", "v", time.Minute))
	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	assert.Equal(t, time.Minute, mr.TTL("k"))

	mr.FastForward(2 * time.Minute)
	_, err = r.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Set(ctx, "a", "1", 0))
	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx))
	assert.False(t, mr.Exists("a"))
}

func TestNewRedisValidation(t *testing.T) {
	_, err := NewRedis(context.Background(), RedisConfig{})
	assert.ErrorIs(t, err, ErrHostRequired)

	_, err = NewRedis(context.Background(), RedisConfig{Host: "localhost", Port: 70000})
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestNewRedisConnects(t *testing.T) {
	mr := miniredis.RunT(t)
	r, err := NewRedis(context.Background(), RedisConfig{Host: mr.Host(), Port: atoi(t, mr.Port())})
	require.NoError(t, err)
	require.NoError(t, r.Close())
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}
