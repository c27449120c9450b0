package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/itsDrac/bidhub/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedisContainer starts a Redis testcontainer
func setupRedisContainer(t *testing.T, ctx context.Context) string {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--requirepass", "testredispass"},
		WaitingFor: wait.ForLog("Ready to accept connections").
			WithStartupTimeout(60 * time.Second),
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = redisContainer.Terminate(context.Background()) })

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, mappedPort.Port())
}

func TestNewRedisClient_RequiresAddr(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.RedisConfig{})
	assert.Error(t, err)
}

func TestRedisCache_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()
	addr := setupRedisContainer(t, ctx)

	c, err := NewRedisClient(ctx, config.RedisConfig{Addr: addr, Password: "testredispass"})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Ping(ctx))

	_, _, err = c.Pop(ctx, "q", 0)
	assert.ErrorIs(t, err, ErrInvalidTimeout)

	val, ok, err := c.Pop(ctx, "q", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)

	require.NoError(t, c.Push(ctx, "q", "a"))
	require.NoError(t, c.Push(ctx, "q", "b"))
	n, err := c.Len(ctx, "q")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	val, ok, err = c.Pop(ctx, "q", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", val)
}
