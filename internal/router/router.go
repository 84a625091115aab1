package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpmetrics "github.com/slok/go-http-metrics/metrics/prometheus"
	mdlw "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-adoption/docs"
	"pet-adoption/internal/domain/catalog"
	"pet-adoption/internal/domain/chat"
	"pet-adoption/internal/domain/favorites"
	"pet-adoption/internal/domain/lostfound"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/profiles"
	"pet-adoption/internal/domain/ratings"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpx"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/storecall"
	"pet-adoption/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Backend: DB (Postgres) > Badger > in-memory.
	DB     *sql.DB
	Badger *badger.DB

	Logger  logger.Logger
	Policy  storecall.Policy
	Metrics *metrics.Metrics

	// Cache del catálogo; nil => en memoria.
	Cache    catalog.Cache
	CacheTTL time.Duration

	ReconcileConcurrency int
}

func NewRouter(opts Options) http.Handler {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}

	svcs := NewServices(NewStores(opts.DB, opts.Badger), ServiceOptions{
		Policy:               opts.Policy,
		Logger:               opts.Logger,
		Metrics:              opts.Metrics,
		Cache:                opts.Cache,
		CacheTTL:             opts.CacheTTL,
		ReconcileConcurrency: opts.ReconcileConcurrency,
	})

	return newMux(opts, svcs)
}

func newMux(opts Options, svcs Services) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(httpx.RequestLogger(opts.Logger))

	// Latencias y códigos HTTP en el mismo registry que las métricas de negocio
	recorder := mdlw.New(mdlw.Config{
		Recorder: httpmetrics.NewRecorder(httpmetrics.Config{Registry: opts.Metrics.Registry}),
	})
	r.Use(std.HandlerProvider("", recorder))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	pets.RegisterRoutes(r, svcs.Pets)
	catalog.RegisterRoutes(r, svcs.Catalog)
	favorites.RegisterRoutes(r, svcs.Favorites)
	chat.RegisterRoutes(r, svcs.Chat)
	ratings.RegisterRoutes(r, svcs.Ratings)
	profiles.RegisterRoutes(r, svcs.Profiles)
	lostfound.RegisterRoutes(r, svcs.LostFound)

	return r
}
