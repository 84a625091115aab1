package postgres

import (
	"context"
	"database/sql"

	"pet-adoption/internal/domain/ratings"
)

type RatingsRepo struct {
	db *sql.DB
}

func NewRatingsRepo(db *sql.DB) *RatingsRepo {
	return &RatingsRepo{db: db}
}

// CreateIfAbsent: PK (owner_id, rater_id) + ON CONFLICT DO NOTHING.
func (r *RatingsRepo) CreateIfAbsent(ctx context.Context, rt ratings.Rating) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO owner_ratings (owner_id, rater_id, value, pet_id, created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (owner_id, rater_id) DO NOTHING
	`, rt.OwnerID, rt.RaterID, rt.Value, rt.PetID, rt.CreatedAt)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}

func (r *RatingsRepo) Get(ctx context.Context, ownerID, raterID string) (ratings.Rating, error) {
	var rt ratings.Rating
	err := r.db.QueryRowContext(ctx, `
		SELECT owner_id, rater_id, value, pet_id, created_at
		FROM owner_ratings WHERE owner_id = $1 AND rater_id = $2
	`, ownerID, raterID).Scan(&rt.OwnerID, &rt.RaterID, &rt.Value, &rt.PetID, &rt.CreatedAt)
	if err != nil {
		return ratings.Rating{}, notFoundIfNoRows(err)
	}
	return rt, nil
}

func (r *RatingsRepo) ListByOwner(ctx context.Context, ownerID string) ([]ratings.Rating, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT owner_id, rater_id, value, pet_id, created_at
		FROM owner_ratings WHERE owner_id = $1
		ORDER BY created_at ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ratings.Rating, 0)
	for rows.Next() {
		var rt ratings.Rating
		if err := rows.Scan(&rt.OwnerID, &rt.RaterID, &rt.Value, &rt.PetID, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
