//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisClient(t *testing.T) {
	ctx := context.Background()

	container, err := redis.Run(ctx,
		"redis:7.4-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	c, err := NewRedisClient(ctx, RedisConfig{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	for i := 0; i < 150; i++ {
		require.NoError(t, c.Set(ctx, Key("query", fmt.Sprint(i)), []byte("x"), time.Minute))
	}
	require.NoError(t, c.Set(ctx, "keep", []byte("y"), time.Minute))

	got, err := c.Get(ctx, "query:7")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)

	require.NoError(t, c.DeleteByPrefix(ctx, "query:"))
	_, err = c.Get(ctx, "query:7")
	assert.ErrorIs(t, err, ErrCacheMiss)

	got, err = c.Get(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), got)
}
