package favorites

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/storecall"
)

var (
	ErrInvalidInput = apperr.ErrValidation
	ErrNotFound     = apperr.ErrNotFound
)

// PetLookup resuelve ids a mascotas para ListPets.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo    Repository
	pets    PetLookup
	policy  storecall.Policy
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, petLookup PetLookup, policy storecall.Policy, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		pets:    petLookup,
		policy:  policy,
		metrics: m,
		now:     time.Now,
	}
}

// Load devuelve el conjunto del usuario; si no existe lo crea vacío.
func (s *Service) Load(ctx context.Context, user identity.Identity) (Set, error) {
	rec, err := s.record(ctx, user)
	if err != nil {
		return nil, err
	}
	return rec.PetIDs, nil
}

// Add es idempotente: agregar un id que ya está no cambia el conjunto.
func (s *Service) Add(ctx context.Context, user identity.Identity, petID string) (Set, error) {
	return s.mutate(ctx, user, petID, "add", func(set Set, id string) { set[id] = struct{}{} })
}

// Remove es idempotente: quitar un id ausente no es error.
func (s *Service) Remove(ctx context.Context, user identity.Identity, petID string) (Set, error) {
	return s.mutate(ctx, user, petID, "remove", func(set Set, id string) { delete(set, id) })
}

func (s *Service) IsFavorite(ctx context.Context, user identity.Identity, petID string) (bool, error) {
	set, err := s.Load(ctx, user)
	if err != nil {
		return false, err
	}
	return set.Has(strings.TrimSpace(petID)), nil
}

// ListPets resuelve los favoritos a mascotas. Las que ya no existen se omiten.
func (s *Service) ListPets(ctx context.Context, user identity.Identity) ([]pets.Pet, error) {
	set, err := s.Load(ctx, user)
	if err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(set))
	for _, id := range set.Slice() {
		p, err := s.pets.GetByID(ctx, id)
		if errors.Is(err, pets.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) mutate(ctx context.Context, user identity.Identity, petID, op string, apply func(Set, string)) (Set, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, apperr.Invalid("pet id required", "pet_id")
	}

	rec, err := s.record(ctx, user)
	if err != nil {
		return nil, err
	}

	next := rec.PetIDs.Clone()
	apply(next, petID)
	if next.Has(petID) == rec.PetIDs.Has(petID) {
		// Sin cambios: no hace falta escribir.
		return rec.PetIDs, nil
	}

	rec.PetIDs = next
	rec.UpdatedAt = s.now()
	if err := storecall.Write(ctx, s.policy, "favorites.save", func(ctx context.Context) error {
		return s.repo.Save(ctx, rec)
	}); err != nil {
		return nil, err
	}
	s.metrics.FavoriteMutation(op)
	return next, nil
}

func (s *Service) record(ctx context.Context, user identity.Identity) (Record, error) {
	userID := identity.NormalizeID(user.ID)
	if userID == "" {
		return Record{}, ErrInvalidInput
	}

	rec, err := storecall.Read(ctx, s.policy, "favorites.get", func(ctx context.Context) (Record, error) {
		return s.repo.Get(ctx, userID)
	})
	if err == nil {
		if rec.PetIDs == nil {
			rec.PetIDs = NewSet()
		}
		return rec, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Record{}, err
	}

	// Primer acceso: se crea vacío. Si otro request ganó la carrera usamos el suyo.
	now := s.now()
	rec, err = storecall.WriteValue(ctx, s.policy, "favorites.create", func(ctx context.Context) (Record, error) {
		r, _, err := s.repo.CreateIfAbsent(ctx, Record{UserID: userID, PetIDs: NewSet(), CreatedAt: now, UpdatedAt: now})
		return r, err
	})
	if err != nil {
		return Record{}, err
	}
	if rec.PetIDs == nil {
		rec.PetIDs = NewSet()
	}
	return rec, nil
}
