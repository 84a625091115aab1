package badgerdb

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"pet-adoption/internal/domain/lostfound"
)

type LostFoundRepo struct {
	db *badger.DB
}

func NewLostFoundRepo(db *badger.DB) *LostFoundRepo {
	return &LostFoundRepo{db: db}
}

func (r *LostFoundRepo) Create(ctx context.Context, p lostfound.Post) error {
	return update(r.db, func(txn *badger.Txn) error {
		return setJSON(txn, "lostfound:"+p.ID, p)
	})
}

func (r *LostFoundRepo) List(ctx context.Context) ([]lostfound.Post, error) {
	var out []lostfound.Post
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = scanJSON[lostfound.Post](txn, "lostfound:")
		return err
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
