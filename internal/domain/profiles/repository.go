package profiles

import "context"

type Repository interface {
	Get(ctx context.Context, userID string) (Profile, error)
	CreateIfAbsent(ctx context.Context, p Profile) (Profile, bool, error)
	Save(ctx context.Context, p Profile) error
}
