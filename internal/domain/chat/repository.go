package chat

import (
	"context"
	"time"
)

type ThreadRepository interface {
	// CreateIfAbsent es atómico por ID: si el thread ya existe devuelve el guardado y created=false.
	CreateIfAbsent(ctx context.Context, t Thread) (Thread, bool, error)
	GetByID(ctx context.Context, id string) (Thread, error)
	ListByParticipant(ctx context.Context, participantID string) ([]Thread, error)

	// Touch mueve UpdatedAt (nuevo mensaje).
	Touch(ctx context.Context, id string, at time.Time) error

	// Usados por la reconciliación de perfiles.
	ListIDsByParticipant(ctx context.Context, participantID string) ([]string, error)
	UpdateParticipantInfo(ctx context.Context, threadID, participantID, displayName, imageRef string) error
}

type MessageRepository interface {
	Append(ctx context.Context, m Message) error
	// ListByThread devuelve los mensajes por CreatedAt ascendente.
	ListByThread(ctx context.Context, threadID string) ([]Message, error)
}
