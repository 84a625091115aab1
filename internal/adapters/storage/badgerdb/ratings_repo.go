package badgerdb

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"pet-adoption/internal/domain/ratings"
)

type RatingsRepo struct {
	db *badger.DB
}

func NewRatingsRepo(db *badger.DB) *RatingsRepo {
	return &RatingsRepo{db: db}
}

func ratingPrefix(ownerID string) string { return "rating:" + seg(ownerID) + ":" }

func ratingKey(ownerID, raterID string) string { return ratingPrefix(ownerID) + seg(raterID) }

func (r *RatingsRepo) CreateIfAbsent(ctx context.Context, rt ratings.Rating) (bool, error) {
	created := false
	err := update(r.db, func(txn *badger.Txn) error {
		created = false
		ok, err := exists(txn, ratingKey(rt.OwnerID, rt.RaterID))
		if err != nil || ok {
			return err
		}
		created = true
		return setJSON(txn, ratingKey(rt.OwnerID, rt.RaterID), rt)
	})
	return created, err
}

func (r *RatingsRepo) Get(ctx context.Context, ownerID, raterID string) (ratings.Rating, error) {
	var rt ratings.Rating
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		rt, err = getJSON[ratings.Rating](txn, ratingKey(ownerID, raterID))
		return err
	})
	return rt, err
}

func (r *RatingsRepo) ListByOwner(ctx context.Context, ownerID string) ([]ratings.Rating, error) {
	var out []ratings.Rating
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = scanJSON[ratings.Rating](txn, ratingPrefix(ownerID))
		return err
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
