package badgerdb

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"pet-adoption/internal/domain/favorites"
)

type FavoritesRepo struct {
	db *badger.DB
}

func NewFavoritesRepo(db *badger.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

func favKey(userID string) string { return "fav:" + userID }

func (r *FavoritesRepo) Get(ctx context.Context, userID string) (favorites.Record, error) {
	var rec favorites.Record
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getJSON[favorites.Record](txn, favKey(userID))
		return err
	})
	return rec, err
}

func (r *FavoritesRepo) CreateIfAbsent(ctx context.Context, rec favorites.Record) (favorites.Record, bool, error) {
	var (
		out     favorites.Record
		created bool
	)
	err := update(r.db, func(txn *badger.Txn) error {
		existing, err := getJSON[favorites.Record](txn, favKey(rec.UserID))
		if err == nil {
			out, created = existing, false
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		out, created = rec, true
		return setJSON(txn, favKey(rec.UserID), rec)
	})
	return out, created, err
}

func (r *FavoritesRepo) Save(ctx context.Context, rec favorites.Record) error {
	return update(r.db, func(txn *badger.Txn) error {
		return setJSON(txn, favKey(rec.UserID), rec)
	})
}
