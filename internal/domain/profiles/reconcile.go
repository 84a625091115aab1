package profiles

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/storecall"
)

const (
	KindPet    = "pet"
	KindThread = "thread"

	// AllIDs marca una falla al listar (no se pudo ni enumerar los destinos).
	AllIDs = "*"

	DefaultConcurrency = 4
)

// Failure es un destino que no se pudo actualizar.
type Failure struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// Report resume una corrida de reconciliación. Nunca se descarta: sube al usuario o al CLI.
type Report struct {
	Succeeded int       `json:"succeeded"`
	Failed    []Failure `json:"failed"`
}

func (r Report) OK() bool { return len(r.Failed) == 0 }

// Reconciler copia los datos visibles del perfil (nombre e imagen) a todas las
// publicaciones del usuario y a todos sus threads.
type Reconciler struct {
	pets    PetOwnerStore
	threads ThreadParticipantStore

	concurrency   int
	policy        storecall.Policy
	log           logger.Logger
	metrics       *metrics.Metrics
	onPetsUpdated func(ctx context.Context)
}

type ReconcilerOptions struct {
	Concurrency int
	Policy      storecall.Policy
	Logger      logger.Logger
	Metrics     *metrics.Metrics

	// OnPetsUpdated se llama si al menos una publicación cambió (invalida el catálogo).
	OnPetsUpdated func(ctx context.Context)
}

func NewReconciler(petStore PetOwnerStore, threadStore ThreadParticipantStore, opts ReconcilerOptions) *Reconciler {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.OnPetsUpdated == nil {
		opts.OnPetsUpdated = func(context.Context) {}
	}
	return &Reconciler{
		pets:          petStore,
		threads:       threadStore,
		concurrency:   opts.Concurrency,
		policy:        opts.Policy,
		log:           opts.Logger,
		metrics:       opts.Metrics,
		onPetsUpdated: opts.OnPetsUpdated,
	}
}

type target struct {
	kind string
	id   string
}

// Run actualiza todos los destinos con concurrencia acotada y junta el resultado.
// Las fallas individuales no cortan la corrida.
func (r *Reconciler) Run(ctx context.Context, p Profile) Report {
	var (
		mu     sync.Mutex
		report Report
	)
	fail := func(kind, id string, err error) {
		mu.Lock()
		defer mu.Unlock()
		report.Failed = append(report.Failed, Failure{ID: id, Kind: kind, Reason: err.Error()})
	}

	targets := make([]target, 0)

	petIDs, err := storecall.Read(ctx, r.policy, "reconcile.list_pets", func(ctx context.Context) ([]string, error) {
		return r.pets.ListIDsByOwner(ctx, p.UserID)
	})
	if err != nil {
		fail(KindPet, AllIDs, err)
	}
	for _, id := range petIDs {
		targets = append(targets, target{kind: KindPet, id: id})
	}

	threadIDs, err := storecall.Read(ctx, r.policy, "reconcile.list_threads", func(ctx context.Context) ([]string, error) {
		return r.threads.ListIDsByParticipant(ctx, p.UserID)
	})
	if err != nil {
		fail(KindThread, AllIDs, err)
	}
	for _, id := range threadIDs {
		targets = append(targets, target{kind: KindThread, id: id})
	}

	petsTouched := false

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for _, t := range targets {
		g.Go(func() error {
			err := storecall.Write(ctx, r.policy, "reconcile."+t.kind, func(ctx context.Context) error {
				if t.kind == KindPet {
					return r.pets.UpdateOwnerInfo(ctx, t.id, p.DisplayName, p.ImageRef)
				}
				return r.threads.UpdateParticipantInfo(ctx, t.id, p.UserID, p.DisplayName, p.ImageRef)
			})

			r.metrics.ReconcileUpdate(t.kind, err == nil)
			if err != nil {
				fail(t.kind, t.id, err)
				return nil
			}

			mu.Lock()
			report.Succeeded++
			if t.kind == KindPet {
				petsTouched = true
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // las goroutines nunca devuelven error; las fallas van al reporte

	if petsTouched {
		r.onPetsUpdated(ctx)
	}

	sort.Slice(report.Failed, func(i, j int) bool {
		if report.Failed[i].Kind != report.Failed[j].Kind {
			return report.Failed[i].Kind < report.Failed[j].Kind
		}
		return report.Failed[i].ID < report.Failed[j].ID
	})

	fields := map[string]any{
		"user_id":   p.UserID,
		"succeeded": report.Succeeded,
		"failed":    len(report.Failed),
	}
	if report.OK() {
		r.log.Info("profile reconciled", fields)
	} else {
		r.log.Warn("profile reconciled with failures", fields)
	}
	return report
}
