package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption/internal/domain/lostfound"
)

type lostFoundRepo struct {
	mu    sync.RWMutex
	items []lostfound.Post
}

func NewLostFoundRepo() lostfound.Repository {
	return &lostFoundRepo{}
}

func (r *lostFoundRepo) Create(ctx context.Context, p lostfound.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, p)
	return nil
}

func (r *lostFoundRepo) List(ctx context.Context) ([]lostfound.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lostfound.Post, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
