package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Si verifier != nil y viene Bearer token => intenta Verify() y setea claims.
// - Si verifier == nil => modo dev: X-Debug-User-ID (email) + opcionales X-Debug-User-Name / X-Debug-User-Image.
// - Si no hay claims, el request sigue igual; los handlers decidirán si exigen auth.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev mode: permitir inyectar user sin verifier
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
					claims := auth.Claims{
						UserID:      uid,
						Email:       uid,
						DisplayName: strings.TrimSpace(r.Header.Get("X-Debug-User-Name")),
						ImageRef:    strings.TrimSpace(r.Header.Get("X-Debug-User-Image")),
					}
					ctx := context.WithValue(r.Context(), claimsKey, claims)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos aquí para no acoplar. El handler decide 401/403.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// GetIdentity traduce claims a la identidad de dominio. El email manda; UserID es fallback.
func GetIdentity(ctx context.Context) (identity.Identity, bool) {
	c, ok := GetClaims(ctx)
	if !ok {
		return identity.Identity{}, false
	}
	id := c.Email
	if strings.TrimSpace(id) == "" {
		id = c.UserID
	}
	out := identity.Identity{
		ID:          id,
		DisplayName: c.DisplayName,
		ImageRef:    c.ImageRef,
	}.Normalized()
	if out.IsZero() {
		return identity.Identity{}, false
	}
	return out, true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
