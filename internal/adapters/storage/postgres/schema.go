package postgres

import (
	"context"
	"database/sql"
)

// schema es idempotente; se aplica en cada arranque.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pets (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		owner_display_name TEXT NOT NULL DEFAULT '',
		owner_image_ref TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		breed TEXT NOT NULL,
		age DOUBLE PRECISION NOT NULL DEFAULT 0,
		sex TEXT NOT NULL,
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		address TEXT NOT NULL,
		about TEXT NOT NULL,
		images JSONB NOT NULL DEFAULT '[]',
		cover_image_index INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pets_owner_idx ON pets (owner_id)`,

	`CREATE TABLE IF NOT EXISTS favorites (
		user_id TEXT PRIMARY KEY,
		pet_ids JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS chat_threads (
		id TEXT PRIMARY KEY,
		p0_id TEXT NOT NULL,
		p0_display_name TEXT NOT NULL DEFAULT '',
		p0_image_ref TEXT NOT NULL DEFAULT '',
		p1_id TEXT NOT NULL,
		p1_display_name TEXT NOT NULL DEFAULT '',
		p1_image_ref TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS chat_threads_p0_idx ON chat_threads (p0_id)`,
	`CREATE INDEX IF NOT EXISTS chat_threads_p1_idx ON chat_threads (p1_id)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		thread_id TEXT NOT NULL REFERENCES chat_threads (id),
		sender_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		payload TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS chat_messages_thread_idx ON chat_messages (thread_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS owner_ratings (
		owner_id TEXT NOT NULL,
		rater_id TEXT NOT NULL,
		value SMALLINT NOT NULL CHECK (value BETWEEN 1 AND 5),
		pet_id TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (owner_id, rater_id)
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		user_id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL DEFAULT '',
		image_ref TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS lostfound_posts (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		image_ref TEXT NOT NULL DEFAULT '',
		author_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
