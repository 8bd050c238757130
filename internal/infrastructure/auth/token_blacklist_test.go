package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/propertyhub/backend/internal/infrastructure/auth"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestInMemoryTokenBlacklist_AddToBlacklist(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "test-jti-1", time.Hour))

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, "test-jti-1")
	require.NoError(t, err)
	assert.True(t, isBlacklisted)

	isBlacklisted, err = blacklist.IsBlacklisted(ctx, "test-jti-2")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestInMemoryTokenBlacklist_ExpirationCleanup(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "test-jti-expire", time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, "test-jti-expire")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestInMemoryTokenBlacklist_IgnoresExpiredTTL(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "already-expired", 0))

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, "already-expired")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestRedisTokenBlacklist(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	blacklist := auth.NewRedisTokenBlacklistWithClient(client)
	t.Cleanup(func() { _ = blacklist.Close() })

	require.NoError(t, blacklist.Ping(ctx))
	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-redis", time.Minute))

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, "jti-redis")
	require.NoError(t, err)
	assert.True(t, isBlacklisted)

	ttl, err := client.TTL(ctx, "propertyhub:token:blacklist:jti-redis").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	isBlacklisted, err = blacklist.IsBlacklisted(ctx, "jti-other")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)
}
