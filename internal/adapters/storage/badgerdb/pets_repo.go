package badgerdb

import (
	"context"
	"errors"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *badger.DB
}

func NewPetsRepo(db *badger.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func petKey(id string) string { return "pet:" + id }

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	return update(r.db, func(txn *badger.Txn) error {
		ok, err := exists(txn, petKey(p.ID))
		if err != nil {
			return err
		}
		if ok {
			return errors.New("pet already exists")
		}
		return setJSON(txn, petKey(p.ID), p)
	})
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	return update(r.db, func(txn *badger.Txn) error {
		if _, err := getJSON[pets.Pet](txn, petKey(p.ID)); err != nil {
			return err
		}
		return setJSON(txn, petKey(p.ID), p)
	})
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return update(r.db, func(txn *badger.Txn) error {
		ok, err := exists(txn, petKey(id))
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		return txn.Delete([]byte(petKey(id)))
	})
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var p pets.Pet
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		p, err = getJSON[pets.Pet](txn, petKey(id))
		return err
	})
	return p, err
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return r.list(func(pets.Pet) bool { return true })
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	return r.list(func(p pets.Pet) bool { return p.OwnerID == ownerID })
}

func (r *PetsRepo) ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	items, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out, nil
}

func (r *PetsRepo) UpdateOwnerInfo(ctx context.Context, petID, displayName, imageRef string) error {
	return update(r.db, func(txn *badger.Txn) error {
		p, err := getJSON[pets.Pet](txn, petKey(petID))
		if err != nil {
			return err
		}
		p.OwnerDisplayName, p.OwnerImageRef = displayName, imageRef
		return setJSON(txn, petKey(petID), p)
	})
}

func (r *PetsRepo) list(keep func(pets.Pet) bool) ([]pets.Pet, error) {
	var all []pets.Pet
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		all, err = scanJSON[pets.Pet](txn, "pet:")
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(all))
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
