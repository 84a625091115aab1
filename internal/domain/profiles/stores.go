//go:generate go run go.uber.org/mock/mockgen -source=stores.go -destination=../../mocks/mock_profile_stores.go -package=mocks
package profiles

import "context"

// PetOwnerStore son las publicaciones que copian los datos del dueño (pets.Repository).
type PetOwnerStore interface {
	ListIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	UpdateOwnerInfo(ctx context.Context, petID, displayName, imageRef string) error
}

// ThreadParticipantStore son los threads que copian los datos del participante (chat.ThreadRepository).
type ThreadParticipantStore interface {
	ListIDsByParticipant(ctx context.Context, participantID string) ([]string, error)
	UpdateParticipantInfo(ctx context.Context, threadID, participantID, displayName, imageRef string) error
}
