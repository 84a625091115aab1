package postgres

import (
	"context"
	"database/sql"

	"pet-adoption/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Get(ctx context.Context, userID string) (profiles.Profile, error) {
	var p profiles.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, display_name, image_ref, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.DisplayName, &p.ImageRef, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return profiles.Profile{}, notFoundIfNoRows(err)
	}
	return p, nil
}

func (r *ProfilesRepo) CreateIfAbsent(ctx context.Context, p profiles.Profile) (profiles.Profile, bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, display_name, image_ref, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id) DO NOTHING
	`, p.UserID, p.DisplayName, p.ImageRef, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return profiles.Profile{}, false, err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return p, true, nil
	}
	existing, err := r.Get(ctx, p.UserID)
	return existing, false, err
}

func (r *ProfilesRepo) Save(ctx context.Context, p profiles.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, display_name, image_ref, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			image_ref = EXCLUDED.image_ref,
			updated_at = EXCLUDED.updated_at
	`, p.UserID, p.DisplayName, p.ImageRef, p.CreatedAt, p.UpdatedAt)
	return err
}
