package memory

import (
	"context"
	"sync"

	"pet-adoption/internal/domain/favorites"
)

type favoritesRepo struct {
	mu     sync.RWMutex
	byUser map[string]favorites.Record
}

func NewFavoritesRepo() favorites.Repository {
	return &favoritesRepo{byUser: make(map[string]favorites.Record)}
}

func (r *favoritesRepo) Get(ctx context.Context, userID string) (favorites.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byUser[userID]
	if !ok {
		return favorites.Record{}, ErrNotFound
	}
	rec.PetIDs = rec.PetIDs.Clone()
	return rec, nil
}

func (r *favoritesRepo) CreateIfAbsent(ctx context.Context, rec favorites.Record) (favorites.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byUser[rec.UserID]; ok {
		existing.PetIDs = existing.PetIDs.Clone()
		return existing, false, nil
	}
	rec.PetIDs = rec.PetIDs.Clone()
	r.byUser[rec.UserID] = rec
	return rec, true, nil
}

func (r *favoritesRepo) Save(ctx context.Context, rec favorites.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.PetIDs = rec.PetIDs.Clone()
	r.byUser[rec.UserID] = rec
	return nil
}
