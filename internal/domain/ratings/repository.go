package ratings

import "context"

type Repository interface {
	// CreateIfAbsent inserta solo si no existe (OwnerID, RaterID). created=false si ya había una.
	CreateIfAbsent(ctx context.Context, r Rating) (bool, error)
	Get(ctx context.Context, ownerID, raterID string) (Rating, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Rating, error)
}
