package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"pet-adoption/internal/adapters/auth/idp"
	"pet-adoption/internal/adapters/auth/jwtverifier"
	"pet-adoption/internal/adapters/cache/redis"
	bdb "pet-adoption/internal/adapters/storage/badgerdb"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/domain/catalog"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"
)

// backend son las conexiones abiertas según STORAGE_DRIVER.
type backend struct {
	db *sql.DB
	kv *badger.DB
}

func openBackend(ctx context.Context, cfg config.Config, log logger.Logger) (backend, error) {
	switch cfg.Driver() {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return backend{}, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return backend{}, fmt.Errorf("ensure schema: %w", err)
		}
		log.Info("storage ready", map[string]any{"driver": "postgres"})
		return backend{db: db}, nil
	case config.DriverBadger:
		kv, err := bdb.Open(cfg.BadgerPath)
		if err != nil {
			return backend{}, fmt.Errorf("open badger: %w", err)
		}
		log.Info("storage ready", map[string]any{"driver": "badger", "path": cfg.BadgerPath})
		return backend{kv: kv}, nil
	default:
		log.Warn("using in-memory storage; data is lost on restart", nil)
		return backend{}, nil
	}
}

func (b backend) Close() {
	if b.db != nil {
		_ = b.db.Close()
	}
	if b.kv != nil {
		_ = b.kv.Close()
	}
}

// newVerifier: JWT_SECRET > IdP remoto > nil (modo dev con X-Debug-User-ID).
func newVerifier(cfg config.Config, log logger.Logger) (auth.AuthVerifier, error) {
	switch {
	case strings.TrimSpace(cfg.JWTSecret) != "":
		log.Info("auth: jwt", nil)
		return jwtverifier.New(cfg.JWTSecret, cfg.AppName)
	case strings.TrimSpace(cfg.IDPBaseURL) != "":
		client, err := idp.NewClient(idp.Config{BaseURL: cfg.IDPBaseURL, APIKey: cfg.IDPAPIKey})
		if err != nil {
			return nil, err
		}
		log.Info("auth: idp", map[string]any{"base_url": cfg.IDPBaseURL})
		return idp.NewVerifier(client), nil
	default:
		log.Warn("auth: dev mode, X-Debug-User-ID accepted", nil)
		return nil, nil
	}
}

func newCatalogCache(cfg config.Config, log logger.Logger) (catalog.Cache, error) {
	if strings.TrimSpace(cfg.CatalogCacheURL) == "" {
		return catalog.NewMemoryCache(), nil
	}
	c, err := redis.NewRedisCache(cfg.CatalogCacheURL)
	if err != nil {
		return nil, fmt.Errorf("catalog cache: %w", err)
	}
	if err := c.Ping(); err != nil {
		log.Warn("catalog cache unreachable; requests fall back to the store", map[string]any{"err": err})
	}
	return c, nil
}

// closeCache cierra el cliente del cache si tiene conexión propia (redis).
func closeCache(c catalog.Cache, log logger.Logger) {
	closer, ok := c.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Warn("catalog cache close failed", map[string]any{"err": err})
	}
}
