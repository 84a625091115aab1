package chat

import (
	"time"

	"pet-adoption/internal/domain/identity"
)

// Participant es un snapshot de la identidad al crear el thread.
// profiles.Reconciler lo actualiza cuando cambia el perfil.
type Participant struct {
	ID          string
	DisplayName string
	ImageRef    string
}

// Thread es la conversación entre exactamente dos participantes, ordenados por ID.
type Thread struct {
	ID           string
	Participants [2]Participant
	CreatedAt    time.Time
	UpdatedAt    time.Time // último mensaje (o creación)
}

func (t Thread) Has(participantID string) bool {
	_, ok := t.index(participantID)
	return ok
}

// Other devuelve al otro participante, visto desde participantID.
func (t Thread) Other(participantID string) Participant {
	i, ok := t.index(participantID)
	if !ok {
		return Participant{}
	}
	return t.Participants[1-i]
}

func (t Thread) index(participantID string) (int, bool) {
	participantID = identity.NormalizeID(participantID)
	for i, p := range t.Participants {
		if p.ID == participantID {
			return i, true
		}
	}
	return 0, false
}

// MessageKind
// @Enum text, image
type MessageKind string

const (
	KindText  MessageKind = "text"
	KindImage MessageKind = "image"
)

type MessageStatus string

const StatusSent MessageStatus = "sent"

// Message es append-only. Payload es el texto o la referencia de imagen según Kind.
type Message struct {
	ID        string
	ThreadID  string
	SenderID  string
	Kind      MessageKind
	Payload   string
	Status    MessageStatus
	CreatedAt time.Time
}
