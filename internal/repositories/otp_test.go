package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestOTPRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewOTPRepository(rdb, 2*time.Second)

	t.Run("Set and Get code", func(t *testing.T) {
		err := repo.Set(ctx, "9876543210", "123456")
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "9876543210")
		assert.NoError(t, err)
		assert.Equal(t, "123456", got)
	})

	t.Run("Set replaces previous code", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "9000000000", "111111"))
		assert.NoError(t, repo.Set(ctx, "9000000000", "222222"))

		got, err := repo.Get(ctx, "9000000000")
		assert.NoError(t, err)
		assert.Equal(t, "222222", got)
	})

	t.Run("Missing code is empty", func(t *testing.T) {
		got, err := repo.Get(ctx, "0000000000")
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Delete consumes code", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "9111111111", "333333"))
		assert.NoError(t, repo.Delete(ctx, "9111111111"))

		got, err := repo.Get(ctx, "9111111111")
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Code expires", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "9222222222", "444444"))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, "9222222222")
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
