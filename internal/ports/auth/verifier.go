package auth

import "context"

// AuthVerifier valida el bearer token (JWT local o IdP remoto) y devuelve los claims.
// nil en el router significa modo dev.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
