package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-adoption/internal/domain/chat"
)

type ThreadsRepo struct {
	db *sql.DB
}

func NewThreadsRepo(db *sql.DB) *ThreadsRepo {
	return &ThreadsRepo{db: db}
}

const threadColumns = `
	id,
	p0_id, p0_display_name, p0_image_ref,
	p1_id, p1_display_name, p1_image_ref,
	created_at, updated_at`

// CreateIfAbsent: el PK sobre id deduplica; ON CONFLICT evita la carrera lookup-then-insert.
func (r *ThreadsRepo) CreateIfAbsent(ctx context.Context, t chat.Thread) (chat.Thread, bool, error) {
	p0, p1 := t.Participants[0], t.Participants[1]
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_threads (`+threadColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO NOTHING
	`,
		t.ID,
		p0.ID, p0.DisplayName, p0.ImageRef,
		p1.ID, p1.DisplayName, p1.ImageRef,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return chat.Thread{}, false, err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return t, true, nil
	}
	existing, err := r.GetByID(ctx, t.ID)
	return existing, false, err
}

func (r *ThreadsRepo) GetByID(ctx context.Context, id string) (chat.Thread, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+threadColumns+` FROM chat_threads WHERE id = $1`, id)
	t, err := scanThread(row)
	if err != nil {
		return chat.Thread{}, notFoundIfNoRows(err)
	}
	return t, nil
}

func (r *ThreadsRepo) ListByParticipant(ctx context.Context, participantID string) ([]chat.Thread, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+threadColumns+` FROM chat_threads
		WHERE p0_id = $1 OR p1_id = $1
		ORDER BY updated_at DESC
	`, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Thread, 0)
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ThreadsRepo) Touch(ctx context.Context, id string, at time.Time) error {
	return mustAffect(r.db.ExecContext(ctx, `
		UPDATE chat_threads SET updated_at = GREATEST(updated_at, $2) WHERE id = $1
	`, id, at))
}

func (r *ThreadsRepo) ListIDsByParticipant(ctx context.Context, participantID string) ([]string, error) {
	return queryStrings(ctx, r.db, `
		SELECT id FROM chat_threads WHERE p0_id = $1 OR p1_id = $1 ORDER BY id
	`, participantID)
}

func (r *ThreadsRepo) UpdateParticipantInfo(ctx context.Context, threadID, participantID, displayName, imageRef string) error {
	return mustAffect(r.db.ExecContext(ctx, `
		UPDATE chat_threads SET
			p0_display_name = CASE WHEN p0_id = $2 THEN $3 ELSE p0_display_name END,
			p0_image_ref    = CASE WHEN p0_id = $2 THEN $4 ELSE p0_image_ref END,
			p1_display_name = CASE WHEN p1_id = $2 THEN $3 ELSE p1_display_name END,
			p1_image_ref    = CASE WHEN p1_id = $2 THEN $4 ELSE p1_image_ref END
		WHERE id = $1 AND (p0_id = $2 OR p1_id = $2)
	`, threadID, participantID, displayName, imageRef))
}

func scanThread(s scanner) (chat.Thread, error) {
	var t chat.Thread
	p0, p1 := &t.Participants[0], &t.Participants[1]
	err := s.Scan(
		&t.ID,
		&p0.ID, &p0.DisplayName, &p0.ImageRef,
		&p1.ID, &p1.DisplayName, &p1.ImageRef,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

func (r *MessagesRepo) Append(ctx context.Context, m chat.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_messages (id, thread_id, sender_id, kind, payload, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, m.ID, m.ThreadID, m.SenderID, string(m.Kind), m.Payload, string(m.Status), m.CreatedAt)
	return err
}

func (r *MessagesRepo) ListByThread(ctx context.Context, threadID string) ([]chat.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, thread_id, sender_id, kind, payload, status, created_at
		FROM chat_messages
		WHERE thread_id = $1
		ORDER BY created_at ASC, id ASC
	`, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Message, 0)
	for rows.Next() {
		var (
			m            chat.Message
			kind, status string
		)
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.SenderID, &kind, &m.Payload, &status, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Kind, m.Status = chat.MessageKind(kind), chat.MessageStatus(status)
		out = append(out, m)
	}
	return out, rows.Err()
}
