package postgres

import (
	"context"
	"database/sql"

	"pet-adoption/internal/domain/lostfound"
)

type LostFoundRepo struct {
	db *sql.DB
}

func NewLostFoundRepo(db *sql.DB) *LostFoundRepo {
	return &LostFoundRepo{db: db}
}

func (r *LostFoundRepo) Create(ctx context.Context, p lostfound.Post) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lostfound_posts (id, kind, title, description, location, image_ref, author_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, p.ID, string(p.Kind), p.Title, p.Description, p.Location, p.ImageRef, p.AuthorID, p.CreatedAt)
	return err
}

func (r *LostFoundRepo) List(ctx context.Context) ([]lostfound.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, title, description, location, image_ref, author_id, created_at
		FROM lostfound_posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lostfound.Post, 0)
	for rows.Next() {
		var (
			p    lostfound.Post
			kind string
		)
		if err := rows.Scan(&p.ID, &kind, &p.Title, &p.Description, &p.Location, &p.ImageRef, &p.AuthorID, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Kind = lostfound.Kind(kind)
		out = append(out, p)
	}
	return out, rows.Err()
}
