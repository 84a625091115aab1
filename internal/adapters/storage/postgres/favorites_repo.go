package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"pet-adoption/internal/domain/favorites"
)

type FavoritesRepo struct {
	db *sql.DB
}

func NewFavoritesRepo(db *sql.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

func (r *FavoritesRepo) Get(ctx context.Context, userID string) (favorites.Record, error) {
	var (
		rec favorites.Record
		raw []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, pet_ids, created_at, updated_at FROM favorites WHERE user_id = $1
	`, userID).Scan(&rec.UserID, &raw, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return favorites.Record{}, notFoundIfNoRows(err)
	}
	if err := json.Unmarshal(raw, &rec.PetIDs); err != nil {
		return favorites.Record{}, err
	}
	return rec, nil
}

func (r *FavoritesRepo) CreateIfAbsent(ctx context.Context, rec favorites.Record) (favorites.Record, bool, error) {
	raw, err := json.Marshal(rec.PetIDs)
	if err != nil {
		return favorites.Record{}, false, err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, pet_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`, rec.UserID, raw, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return favorites.Record{}, false, err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return rec, true, nil
	}
	existing, err := r.Get(ctx, rec.UserID)
	return existing, false, err
}

func (r *FavoritesRepo) Save(ctx context.Context, rec favorites.Record) error {
	raw, err := json.Marshal(rec.PetIDs)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, pet_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET pet_ids = EXCLUDED.pet_ids, updated_at = EXCLUDED.updated_at
	`, rec.UserID, raw, rec.CreatedAt, rec.UpdatedAt)
	return err
}
