package redis_test

import (
	"context"
	"miniAppRelay/internal/infrastructure/cache/redis"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func SetupRedis(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("интеграционный тест с контейнером redis пропущен в режиме -short")
	}

	ctx := context.Background()

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(10 * time.Second),
		},
		Started: true,
	})

	t.Cleanup(func() {
		if redisContainer != nil {
			_ = redisContainer.Terminate(context.Background())
		}
	})

	require.NoError(t, err, "запуск тестового контейнера с redis, закончился ошибкой")

	addr, err := redisContainer.Endpoint(ctx, "")

	require.NoError(t, err, "получение адреса redis, закончилось ошибкой")

	return addr
}

func TestStore_Claim(t *testing.T) {
	store, err := redis.NewStore(&redis.Config{RedisAddr: SetupRedis(t), UpdateTTL: time.Hour})

	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()

	claimed, err := store.Claim(ctx, 777)

	assert.NoError(t, err)
	assert.True(t, claimed, "первый апдейт должен быть принят")

	claimed, err = store.Claim(ctx, 777)

	assert.NoError(t, err)
	assert.False(t, claimed, "повторный апдейт должен быть отброшен")

	claimed, err = store.Claim(ctx, 778)

	assert.NoError(t, err)
	assert.True(t, claimed)
}

func TestStore_ClaimExpires(t *testing.T) {
	store, err := redis.NewStore(&redis.Config{RedisAddr: SetupRedis(t), UpdateTTL: time.Second})

	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()

	claimed, err := store.Claim(ctx, 1)

	require.NoError(t, err)
	require.True(t, claimed)

	assert.Eventually(t, func() bool {
		claimed, err = store.Claim(ctx, 1)

		return err == nil && claimed
	}, 5*time.Second, 200*time.Millisecond, "после истечения TTL апдейт принимается снова")
}

func TestNewStore_Unreachable(t *testing.T) {
	_, err := redis.NewStore(&redis.Config{RedisAddr: "127.0.0.1:1"})

	assert.Error(t, err)
}
