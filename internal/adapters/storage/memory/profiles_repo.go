package memory

import (
	"context"
	"sync"

	"pet-adoption/internal/domain/profiles"
)

type profilesRepo struct {
	mu   sync.RWMutex
	byID map[string]profiles.Profile
}

func NewProfilesRepo() profiles.Repository {
	return &profilesRepo{byID: make(map[string]profiles.Profile)}
}

func (r *profilesRepo) Get(ctx context.Context, userID string) (profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[userID]
	if !ok {
		return profiles.Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *profilesRepo) CreateIfAbsent(ctx context.Context, p profiles.Profile) (profiles.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[p.UserID]; ok {
		return existing, false, nil
	}
	r.byID[p.UserID] = p
	return p, true, nil
}

func (r *profilesRepo) Save(ctx context.Context, p profiles.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[p.UserID] = p
	return nil
}
