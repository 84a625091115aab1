package memory

import (
	"context"
	"sync"

	"pet-adoption/internal/domain/ratings"
)

type ratingKey struct {
	owner, rater string
}

type ratingsRepo struct {
	mu    sync.RWMutex
	byKey map[ratingKey]ratings.Rating
	order []ratingKey
}

func NewRatingsRepo() ratings.Repository {
	return &ratingsRepo{byKey: make(map[ratingKey]ratings.Rating)}
}

func (r *ratingsRepo) CreateIfAbsent(ctx context.Context, rt ratings.Rating) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := ratingKey{owner: rt.OwnerID, rater: rt.RaterID}
	if _, ok := r.byKey[k]; ok {
		return false, nil
	}
	r.byKey[k] = rt
	r.order = append(r.order, k)
	return true, nil
}

func (r *ratingsRepo) Get(ctx context.Context, ownerID, raterID string) (ratings.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.byKey[ratingKey{owner: ownerID, rater: raterID}]
	if !ok {
		return ratings.Rating{}, ErrNotFound
	}
	return rt, nil
}

func (r *ratingsRepo) ListByOwner(ctx context.Context, ownerID string) ([]ratings.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ratings.Rating, 0)
	for _, k := range r.order {
		if k.owner == ownerID {
			out = append(out, r.byKey[k])
		}
	}
	return out, nil
}
