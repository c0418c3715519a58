package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/redis/go-redis/v9"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

const photoListKey = "photos:list"

// RedisPhotoCache shares the resolved list between API instances.
type RedisPhotoCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisPhotoCache(client *redis.Client, ttl time.Duration) *RedisPhotoCache {
	return &RedisPhotoCache{client: client, key: photoListKey, ttl: ttl}
}

func (c *RedisPhotoCache) Get(ctx context.Context) ([]entity.Photo, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cached photos: %w", err)
	}

	var photos []entity.Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, false, fmt.Errorf("decoding cached photos: %w", err)
	}
	return photos, true, nil
}

func (c *RedisPhotoCache) Set(ctx context.Context, photos []entity.Photo) error {
	data, err := json.Marshal(photos)
	if err != nil {
		return fmt.Errorf("encoding photos: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching photos: %w", err)
	}
	return nil
}

func (c *RedisPhotoCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("invalidating cached photos: %w", err)
	}
	return nil
}

// MemoryPhotoCache keeps the list in process. Entries are stored encoded so
// callers never share slices with the cache. Hits do not extend the TTL.
type MemoryPhotoCache struct {
	items *ttlcache.Cache[string, []byte]
	key   string
}

func NewMemoryPhotoCache(ttl time.Duration) *MemoryPhotoCache {
	items := ttlcache.New(
		ttlcache.WithTTL[string, []byte](ttl),
		ttlcache.WithCapacity[string, []byte](1),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	return &MemoryPhotoCache{items: items, key: photoListKey}
}

func (c *MemoryPhotoCache) Get(_ context.Context) ([]entity.Photo, bool, error) {
	item := c.items.Get(c.key)
	if item == nil {
		return nil, false, nil
	}

	var photos []entity.Photo
	if err := json.Unmarshal(item.Value(), &photos); err != nil {
		return nil, false, fmt.Errorf("decoding cached photos: %w", err)
	}
	return photos, true, nil
}

func (c *MemoryPhotoCache) Set(_ context.Context, photos []entity.Photo) error {
	data, err := json.Marshal(photos)
	if err != nil {
		return fmt.Errorf("encoding photos: %w", err)
	}
	c.items.Set(c.key, data, ttlcache.DefaultTTL)
	return nil
}

func (c *MemoryPhotoCache) Invalidate(_ context.Context) error {
	c.items.Delete(c.key)
	return nil
}
