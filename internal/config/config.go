package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/storecall"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

type Config struct {
	Port      int    `env:"PORT,default=8080"`
	AppName   string `env:"APP_NAME,default=pet-adoption"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	// memory | postgres | badger
	StorageDriver string `env:"STORAGE_DRIVER,default=memory"`
	DBDSN         string `env:"DB_DSN"`
	BadgerPath    string `env:"BADGER_PATH"`

	// Opcional: redis://host:6379/0. Sin URL se usa cache en memoria.
	CatalogCacheURL string        `env:"CATALOG_CACHE_URL"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL,default=30s"`

	StoreTimeout      time.Duration `env:"STORE_TIMEOUT,default=5s"`
	StoreRetryBackoff time.Duration `env:"STORE_RETRY_BACKOFF,default=200ms"`

	// Auth: JWT_SECRET tiene prioridad; si no, IdP remoto; si nada, modo dev (X-Debug-User-ID).
	JWTSecret  string `env:"JWT_SECRET"`
	IDPBaseURL string `env:"IDP_BASE_URL"`
	IDPAPIKey  string `env:"IDP_API_KEY"`

	ReconcileConcurrency int `env:"RECONCILE_CONCURRENCY,default=4"`
}

// Load lee .env (si existe) y luego el entorno.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.StorageDriver)) {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("config error: DB_DSN required for STORAGE_DRIVER=postgres")
		}
	case DriverBadger:
		if strings.TrimSpace(c.BadgerPath) == "" {
			return fmt.Errorf("config error: BADGER_PATH required for STORAGE_DRIVER=badger")
		}
	default:
		return fmt.Errorf("config error: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.ReconcileConcurrency <= 0 {
		return fmt.Errorf("config error: RECONCILE_CONCURRENCY must be > 0")
	}
	return nil
}

func (c Config) Driver() string {
	return strings.ToLower(strings.TrimSpace(c.StorageDriver))
}

func (c Config) StorePolicy() storecall.Policy {
	return storecall.Policy{Timeout: c.StoreTimeout, Backoff: c.StoreRetryBackoff}
}

func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	})
}
