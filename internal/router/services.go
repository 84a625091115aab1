package router

import (
	"context"
	"database/sql"
	"time"

	"github.com/dgraph-io/badger/v4"

	bdb "pet-adoption/internal/adapters/storage/badgerdb"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/catalog"
	"pet-adoption/internal/domain/chat"
	"pet-adoption/internal/domain/favorites"
	"pet-adoption/internal/domain/lostfound"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/profiles"
	"pet-adoption/internal/domain/ratings"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/storecall"
)

// Stores agrupa los repos de un backend.
type Stores struct {
	Pets      pets.Repository
	Favorites favorites.Repository
	Threads   chat.ThreadRepository
	Messages  chat.MessageRepository
	Ratings   ratings.Repository
	Profiles  profiles.Repository
	LostFound lostfound.Repository
}

// NewStores elige backend: Postgres si hay DB, Badger si hay Badger, si no in-memory.
func NewStores(db *sql.DB, kv *badger.DB) Stores {
	switch {
	case db != nil:
		return Stores{
			Pets:      pg.NewPetsRepo(db),
			Favorites: pg.NewFavoritesRepo(db),
			Threads:   pg.NewThreadsRepo(db),
			Messages:  pg.NewMessagesRepo(db),
			Ratings:   pg.NewRatingsRepo(db),
			Profiles:  pg.NewProfilesRepo(db),
			LostFound: pg.NewLostFoundRepo(db),
		}
	case kv != nil:
		return Stores{
			Pets:      bdb.NewPetsRepo(kv),
			Favorites: bdb.NewFavoritesRepo(kv),
			Threads:   bdb.NewThreadsRepo(kv),
			Messages:  bdb.NewMessagesRepo(kv),
			Ratings:   bdb.NewRatingsRepo(kv),
			Profiles:  bdb.NewProfilesRepo(kv),
			LostFound: bdb.NewLostFoundRepo(kv),
		}
	default:
		return Stores{
			Pets:      mem.NewPetRepo(),
			Favorites: mem.NewFavoritesRepo(),
			Threads:   mem.NewThreadRepo(),
			Messages:  mem.NewMessageRepo(),
			Ratings:   mem.NewRatingsRepo(),
			Profiles:  mem.NewProfilesRepo(),
			LostFound: mem.NewLostFoundRepo(),
		}
	}
}

// Services por módulo, ya cableados entre sí.
type Services struct {
	Pets      *pets.Service
	Catalog   *catalog.Service
	Favorites *favorites.Service
	Chat      *chat.Service
	Ratings   *ratings.Service
	Profiles  *profiles.Service
	LostFound *lostfound.Service
}

type ServiceOptions struct {
	Policy               storecall.Policy
	Logger               logger.Logger
	Metrics              *metrics.Metrics
	Cache                catalog.Cache
	CacheTTL             time.Duration
	ReconcileConcurrency int
}

func NewServices(st Stores, opts ServiceOptions) Services {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	petsSvc := pets.NewService(st.Pets, opts.Policy)

	catalogSvc := catalog.NewService(petsSvc, catalog.Options{
		Cache:   opts.Cache,
		TTL:     opts.CacheTTL,
		Logger:  opts.Logger.With(map[string]any{"module": "catalog"}),
		Metrics: opts.Metrics,
	})
	// Cualquier alta/edición/baja invalida el catálogo cacheado
	petsSvc.OnChange(catalogSvc.Invalidate)

	reconciler := profiles.NewReconciler(st.Pets, st.Threads, profiles.ReconcilerOptions{
		Concurrency:   opts.ReconcileConcurrency,
		Policy:        opts.Policy,
		Logger:        opts.Logger.With(map[string]any{"module": "profiles"}),
		Metrics:       opts.Metrics,
		OnPetsUpdated: func(ctx context.Context) { catalogSvc.Invalidate(ctx) },
	})

	return Services{
		Pets:      petsSvc,
		Catalog:   catalogSvc,
		Favorites: favorites.NewService(st.Favorites, petsSvc, opts.Policy, opts.Metrics),
		Chat: chat.NewService(st.Threads, st.Messages, petsSvc, chat.Options{
			Policy:  opts.Policy,
			Logger:  opts.Logger.With(map[string]any{"module": "chat"}),
			Metrics: opts.Metrics,
		}),
		Ratings:   ratings.NewService(st.Ratings, petsSvc, opts.Policy, opts.Metrics),
		Profiles:  profiles.NewService(st.Profiles, reconciler, opts.Policy),
		LostFound: lostfound.NewService(st.LostFound, opts.Policy),
	}
}
