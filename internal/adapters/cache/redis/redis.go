package redis

import (
	"context"
	"time"

	r "gopkg.in/redis.v5"
)

const prefix = "_PETADOPT_"

// Cache implementa catalog.Cache sobre redis. El cliente v5 no recibe ctx;
// se respeta solo si ya está cancelado antes de llamar.
type Cache struct {
	client *r.Client
}

func NewRedisCache(url string) (*Cache, error) {
	opts, err := r.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &Cache{client: r.NewClient(opts)}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	b, err := c.client.Get(prefix + key).Bytes()
	if err == r.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.client.Set(prefix+key, value, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.client.Del(prefix + key).Err()
}

func (c *Cache) Ping() error {
	return c.client.Ping().Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
