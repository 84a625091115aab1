package catalog

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
)

const cacheKey = "catalog:all"

// PetSource es lo único que el catálogo necesita de pets.
type PetSource interface {
	ListAll(ctx context.Context) ([]pets.Pet, error)
}

type Query struct {
	Category string
	Term     string
	Sort     SortKey
}

type Service struct {
	source  PetSource
	cache   Cache
	ttl     time.Duration
	log     logger.Logger
	metrics *metrics.Metrics

	// gen sube en cada Invalidate; una carga iniciada antes no puede cachear su snapshot.
	gen atomic.Uint64
}

type Options struct {
	Cache   Cache
	TTL     time.Duration
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewService(source PetSource, opts Options) *Service {
	if opts.Cache == nil {
		opts.Cache = NewMemoryCache()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	return &Service{
		source:  source,
		cache:   opts.Cache,
		ttl:     opts.TTL,
		log:     opts.Logger,
		metrics: opts.Metrics,
	}
}

// List carga la colección completa (cache primero) y aplica FilterAndSort.
func (s *Service) List(ctx context.Context, q Query) ([]pets.Pet, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAndSort(all, q.Category, q.Term, q.Sort), nil
}

// Invalidate se engancha a pets.Service.OnChange.
func (s *Service) Invalidate(ctx context.Context) {
	s.gen.Add(1)
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		s.log.Warn("catalog cache invalidate failed", map[string]any{"err": err})
	}
}

func (s *Service) load(ctx context.Context) ([]pets.Pet, error) {
	raw, ok, err := s.cache.Get(ctx, cacheKey)
	switch {
	case err != nil:
		// El cache es opcional: si falla vamos directo al store.
		s.metrics.CacheLookup("error")
		s.log.Warn("catalog cache get failed", map[string]any{"err": err})
	case ok:
		var items []pets.Pet
		if err := json.Unmarshal(raw, &items); err == nil {
			s.metrics.CacheLookup("hit")
			return items, nil
		}
		s.metrics.CacheLookup("error")
	default:
		s.metrics.CacheLookup("miss")
	}

	gen := s.gen.Load()
	items, err := s.source.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, gen, items)
	return items, nil
}

// store cachea items solo si no hubo Invalidate desde que empezó la carga.
func (s *Service) store(ctx context.Context, gen uint64, items []pets.Pet) {
	if s.gen.Load() != gen {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey, raw, s.ttl); err != nil {
		s.log.Warn("catalog cache set failed", map[string]any{"err": err})
		return
	}
	// Invalidate entre el chequeo y el Set: borrar lo que acabamos de escribir
	if s.gen.Load() != gen {
		if err := s.cache.Delete(ctx, cacheKey); err != nil {
			s.log.Warn("catalog cache invalidate failed", map[string]any{"err": err})
		}
	}
}
