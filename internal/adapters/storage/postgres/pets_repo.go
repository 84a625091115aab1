package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_id, owner_display_name, owner_image_ref,
	name, category, breed, age, sex, weight, address, about,
	images, cover_image_index,
	created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		p.ID, p.OwnerID, p.OwnerDisplayName, p.OwnerImageRef,
		p.Name, p.Category, p.Breed, p.Age, string(p.Sex), p.Weight, p.Address, p.About,
		images, p.CoverImageIndex,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	return mustAffect(r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			category = $3,
			breed = $4,
			age = $5,
			sex = $6,
			weight = $7,
			address = $8,
			about = $9,
			images = $10,
			cover_image_index = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name, p.Category, p.Breed, p.Age, string(p.Sex), p.Weight, p.Address, p.About,
		images, p.CoverImageIndex,
		p.UpdatedAt,
	))
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return mustAffect(r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id))
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, notFoundIfNoRows(err)
	}
	return p, nil
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `SELECT `+petColumns+` FROM pets ORDER BY created_at ASC, id ASC`)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}
	return r.list(ctx, `SELECT `+petColumns+` FROM pets WHERE owner_id = $1 ORDER BY created_at ASC`, ownerID)
}

func (r *PetsRepo) ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	return queryStrings(ctx, r.db, `SELECT id FROM pets WHERE owner_id = $1 ORDER BY id`, ownerID)
}

func (r *PetsRepo) UpdateOwnerInfo(ctx context.Context, petID, displayName, imageRef string) error {
	return mustAffect(r.db.ExecContext(ctx, `
		UPDATE pets SET owner_display_name = $2, owner_image_ref = $3 WHERE id = $1
	`, petID, displayName, imageRef))
}

func (r *PetsRepo) list(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPet(s scanner) (pets.Pet, error) {
	var (
		p      pets.Pet
		sex    string
		images []byte
	)
	if err := s.Scan(
		&p.ID, &p.OwnerID, &p.OwnerDisplayName, &p.OwnerImageRef,
		&p.Name, &p.Category, &p.Breed, &p.Age, &sex, &p.Weight, &p.Address, &p.About,
		&images, &p.CoverImageIndex,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Sex = pets.Sex(sex)
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return pets.Pet{}, err
		}
	}
	return p, nil
}

func queryStrings(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
