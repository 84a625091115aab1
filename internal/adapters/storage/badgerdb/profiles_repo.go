package badgerdb

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"pet-adoption/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *badger.DB
}

func NewProfilesRepo(db *badger.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func profileKey(userID string) string { return "profile:" + userID }

func (r *ProfilesRepo) Get(ctx context.Context, userID string) (profiles.Profile, error) {
	var p profiles.Profile
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		p, err = getJSON[profiles.Profile](txn, profileKey(userID))
		return err
	})
	return p, err
}

func (r *ProfilesRepo) CreateIfAbsent(ctx context.Context, p profiles.Profile) (profiles.Profile, bool, error) {
	var (
		out     profiles.Profile
		created bool
	)
	err := update(r.db, func(txn *badger.Txn) error {
		existing, err := getJSON[profiles.Profile](txn, profileKey(p.UserID))
		if err == nil {
			out, created = existing, false
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		out, created = p, true
		return setJSON(txn, profileKey(p.UserID), p)
	})
	return out, created, err
}

func (r *ProfilesRepo) Save(ctx context.Context, p profiles.Profile) error {
	return update(r.db, func(txn *badger.Txn) error {
		return setJSON(txn, profileKey(p.UserID), p)
	})
}
