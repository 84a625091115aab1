package ratings

import (
	"context"
	"strings"
	"time"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/storecall"
)

var (
	ErrInvalidInput = apperr.ErrValidation
	ErrNotFound     = apperr.ErrNotFound
	ErrAlreadyRated = apperr.ErrAlreadyRated
)

// PetOwners resuelve el dueño de una mascota (pets.Service lo implementa).
type PetOwners interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

type Service struct {
	repo    Repository
	pets    PetOwners
	policy  storecall.Policy
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, petOwners PetOwners, policy storecall.Policy, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		pets:    petOwners,
		policy:  policy,
		metrics: m,
		now:     time.Now,
	}
}

type SubmitInput struct {
	OwnerID string
	Value   int
	PetID   string
}

// Submit registra la calificación de rater sobre el dueño.
// Una segunda calificación del mismo rater devuelve ErrAlreadyRated; la creación es condicional en el store.
func (s *Service) Submit(ctx context.Context, rater identity.Identity, in SubmitInput) (Rating, error) {
	raterID := identity.NormalizeID(rater.ID)
	ownerID := identity.NormalizeID(in.OwnerID)
	petID := strings.TrimSpace(in.PetID)

	switch {
	case raterID == "" || ownerID == "":
		return Rating{}, ErrInvalidInput
	case in.Value < MinValue || in.Value > MaxValue:
		return Rating{}, apperr.Invalid("rating must be between 1 and 5", "value")
	case raterID == ownerID:
		return Rating{}, apperr.Invalid("owners cannot rate themselves", "owner_id")
	}

	if petID != "" && s.pets != nil {
		petOwner, err := s.pets.OwnerOf(ctx, petID)
		if err != nil {
			return Rating{}, err
		}
		if petOwner != ownerID {
			return Rating{}, apperr.Invalid("pet does not belong to owner", "pet_id")
		}
	}

	r := Rating{
		OwnerID:   ownerID,
		RaterID:   raterID,
		Value:     in.Value,
		PetID:     petID,
		CreatedAt: s.now(),
	}

	created, err := storecall.WriteValue(ctx, s.policy, "ratings.create", func(ctx context.Context) (bool, error) {
		return s.repo.CreateIfAbsent(ctx, r)
	})
	if err != nil {
		return Rating{}, err
	}
	if !created {
		s.metrics.RatingSubmitted("already_rated")
		return Rating{}, ErrAlreadyRated
	}

	s.metrics.RatingSubmitted("accepted")
	return r, nil
}

// Summary calcula promedio y cantidad para el dueño.
func (s *Service) Summary(ctx context.Context, ownerID string) (Summary, error) {
	ownerID = identity.NormalizeID(ownerID)
	if ownerID == "" {
		return Summary{}, ErrInvalidInput
	}

	items, err := storecall.Read(ctx, s.policy, "ratings.list", func(ctx context.Context) ([]Rating, error) {
		return s.repo.ListByOwner(ctx, ownerID)
	})
	if err != nil {
		return Summary{}, err
	}

	avg, count := ComputeAverage(items)
	return Summary{OwnerID: ownerID, Average: avg, Count: count}, nil
}

// MyRating devuelve la calificación que rater dio al dueño, o ErrNotFound.
func (s *Service) MyRating(ctx context.Context, rater identity.Identity, ownerID string) (Rating, error) {
	raterID := identity.NormalizeID(rater.ID)
	ownerID = identity.NormalizeID(ownerID)
	if raterID == "" || ownerID == "" {
		return Rating{}, ErrInvalidInput
	}
	return storecall.Read(ctx, s.policy, "ratings.get", func(ctx context.Context) (Rating, error) {
		return s.repo.Get(ctx, ownerID, raterID)
	})
}
