package cache_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/cache"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
)

func samplePhotos() []entity.Photo {
	created := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	iso := 200
	return []entity.Photo{
		{ID: "a", Src: "/a.jpg", Alt: "A", Tags: []string{"x"}, CreatedAt: &created, Exif: &entity.Exif{ISO: &iso}},
		{ID: "b", Src: "/b.jpg", Alt: "B", Tags: []string{}},
	}
}

func TestMemoryPhotoCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss when empty", func(t *testing.T) {
		c := cache.NewMemoryPhotoCache(time.Minute)

		photos, ok, err := c.Get(ctx)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, photos)
	})

	t.Run("hit returns an independent copy", func(t *testing.T) {
		c := cache.NewMemoryPhotoCache(time.Minute)
		require.NoError(t, c.Set(ctx, samplePhotos()))

		first, ok, err := c.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		first[0].Tags[0] = "changed"

		second, _, err := c.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, samplePhotos(), second)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		c := cache.NewMemoryPhotoCache(50 * time.Millisecond)
		require.NoError(t, c.Set(ctx, samplePhotos()))

		_, ok, _ := c.Get(ctx)
		assert.True(t, ok)

		assert.Eventually(t, func() bool {
			_, ok, _ := c.Get(ctx)
			return !ok
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("hits do not extend the ttl", func(t *testing.T) {
		c := cache.NewMemoryPhotoCache(100 * time.Millisecond)
		require.NoError(t, c.Set(ctx, samplePhotos()))

		time.Sleep(60 * time.Millisecond)
		_, ok, _ := c.Get(ctx)
		require.True(t, ok)

		time.Sleep(70 * time.Millisecond)
		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set replaces the previous list", func(t *testing.T) {
		c := cache.NewMemoryPhotoCache(time.Minute)
		require.NoError(t, c.Set(ctx, samplePhotos()))
		require.NoError(t, c.Set(ctx, samplePhotos()[:1]))

		photos, ok, err := c.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Len(t, photos, 1)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c := cache.NewMemoryPhotoCache(time.Minute)
		require.NoError(t, c.Set(ctx, samplePhotos()))

		require.NoError(t, c.Invalidate(ctx))

		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	host, port, err := net.SplitHostPort(endpoint)
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port)
	require.NoError(t, err)

	client, err := cache.NewRedisClient(ctx, config.RedisConfig{Host: host, Port: portNum, Timeout: 2 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestIntegrationRedisPhotoCache(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()
	c := cache.NewRedisPhotoCache(client, time.Minute)

	t.Run("miss then hit", func(t *testing.T) {
		require.NoError(t, c.Invalidate(ctx))

		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, c.Set(ctx, samplePhotos()))

		photos, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, samplePhotos(), photos)
	})

	t.Run("sets expiry", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, samplePhotos()))

		ttl, err := client.TTL(ctx, "photos:list").Result()

		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("invalidate removes the key", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, samplePhotos()))
		require.NoError(t, c.Invalidate(ctx))

		_, ok, err := c.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRedisOptions(t *testing.T) {
	opts := cache.RedisOptions(config.RedisConfig{
		Host:     "cache",
		Port:     6380,
		Password: "secret",
		DB:       2,
		Timeout:  300 * time.Millisecond,
	})

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "photo-portfolio", opts.ClientName)
	assert.Equal(t, 300*time.Millisecond, opts.DialTimeout)
	assert.Equal(t, 300*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, 300*time.Millisecond, opts.WriteTimeout)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().(*net.TCPAddr)
	require.NoError(t, ln.Close())

	start := time.Now()
	client, err := cache.NewRedisClient(context.Background(), config.RedisConfig{
		Host:    "127.0.0.1",
		Port:    addr.Port,
		Timeout: 200 * time.Millisecond,
	})

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Less(t, time.Since(start), 2*time.Second)
}
