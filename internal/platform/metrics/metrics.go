package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics agrupa los contadores de negocio. Un registry propio por instancia
// para que los tests no choquen con el registry global.
type Metrics struct {
	Registry *prometheus.Registry

	ThreadsResolved    *prometheus.CounterVec
	FavoriteMutations  *prometheus.CounterVec
	RatingsSubmitted   *prometheus.CounterVec
	ReconcileUpdates   *prometheus.CounterVec
	CatalogCacheLookup *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		ThreadsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petadopt",
			Name:      "threads_resolved_total",
			Help:      "Chat threads resolved, by outcome (created|existing).",
		}, []string{"outcome"}),
		FavoriteMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petadopt",
			Name:      "favorite_mutations_total",
			Help:      "Favorite set mutations, by operation (add|remove).",
		}, []string{"op"}),
		RatingsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petadopt",
			Name:      "ratings_submitted_total",
			Help:      "Owner rating submissions, by result (accepted|already_rated).",
		}, []string{"result"}),
		ReconcileUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petadopt",
			Name:      "reconcile_updates_total",
			Help:      "Denormalized owner metadata updates, by target kind and result.",
		}, []string{"kind", "result"}),
		CatalogCacheLookup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petadopt",
			Name:      "catalog_cache_lookups_total",
			Help:      "Catalog cache lookups, by result (hit|miss|error).",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.ThreadsResolved,
		m.FavoriteMutations,
		m.RatingsSubmitted,
		m.ReconcileUpdates,
		m.CatalogCacheLookup,
	)
	return m
}

// Helpers nil-safe: los servicios aceptan *Metrics nil (tests, CLI).

func (m *Metrics) ThreadResolved(created bool) {
	if m == nil {
		return
	}
	outcome := "existing"
	if created {
		outcome = "created"
	}
	m.ThreadsResolved.WithLabelValues(outcome).Inc()
}

func (m *Metrics) FavoriteMutation(op string) {
	if m == nil {
		return
	}
	m.FavoriteMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) RatingSubmitted(result string) {
	if m == nil {
		return
	}
	m.RatingsSubmitted.WithLabelValues(result).Inc()
}

func (m *Metrics) ReconcileUpdate(kind string, ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.ReconcileUpdates.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.CatalogCacheLookup.WithLabelValues(result).Inc()
}
