package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pet-adoption/internal/config"
	"pet-adoption/internal/domain/catalog"
	"pet-adoption/internal/platform/logger"
)

type closingCache struct {
	closed int
	err    error
}

func (c *closingCache) Get(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil }
func (c *closingCache) Set(ctx context.Context, key string, v []byte, ttl time.Duration) error {
	return nil
}
func (c *closingCache) Delete(ctx context.Context, key string) error { return nil }
func (c *closingCache) Close() error {
	c.closed++
	return c.err
}

func TestCloseCache(t *testing.T) {
	c := &closingCache{err: errors.New("already closed")}
	closeCache(c, logger.NewNop())
	assert.Equal(t, 1, c.closed)

	// El cache en memoria no tiene nada que cerrar
	assert.NotPanics(t, func() { closeCache(catalog.NewMemoryCache(), logger.NewNop()) })
}

func TestNewCatalogCache_DefaultsToMemory(t *testing.T) {
	c, err := newCatalogCache(config.Config{}, logger.NewNop())
	assert.NoError(t, err)
	assert.IsType(t, &catalog.MemoryCache{}, c)
}

func TestNewCatalogCache_RejectsBadURL(t *testing.T) {
	_, err := newCatalogCache(config.Config{CatalogCacheURL: "http://not-redis"}, logger.NewNop())
	assert.Error(t, err)
}
