package favorites

import "context"

type Repository interface {
	// Get devuelve ErrNotFound si el usuario nunca tuvo registro.
	Get(ctx context.Context, userID string) (Record, error)

	// CreateIfAbsent crea el registro si no existe; si ya existe devuelve el existente y created=false.
	CreateIfAbsent(ctx context.Context, rec Record) (Record, bool, error)

	// Save reemplaza el conjunto completo (last-write-wins).
	Save(ctx context.Context, rec Record) error
}
