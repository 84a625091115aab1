// Package httpx junta los helpers HTTP compartidos por los handlers de dominio.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/imageref"
	"pet-adoption/internal/platform/logger"
)

// MaxBodyBytes alcanza para 3 imágenes inline en base64 más el resto de los campos.
const MaxBodyBytes = 3*(imageref.MaxInlineBytes*4/3+4) + 64<<10

type ctxKey struct{}

// RequestLogger deja en el contexto un logger con el request_id de chi.
func RequestLogger(l logger.Logger) func(http.Handler) http.Handler {
	if l == nil {
		l = logger.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rl := l.With(map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, rl)))
		})
	}
}

// LoggerFrom devuelve el logger del request, o uno nop.
func LoggerFrom(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(ctxKey{}).(logger.Logger); ok {
		return l
	}
	return logger.NewNop()
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError mapea la taxonomía de apperr a status HTTP. Las fallas del store quedan en el log del request.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, apperr.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperr.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, apperr.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, apperr.ErrAlreadyRated):
		http.Error(w, "already rated", http.StatusConflict)
	case errors.Is(err, apperr.ErrConflict):
		http.Error(w, "conflict", http.StatusConflict)
	case apperr.IsRetryable(err):
		LoggerFrom(r.Context()).Warn("store unavailable", map[string]any{"err": err})
		w.Header().Set("Retry-After", "1")
		http.Error(w, "store unavailable, retry", http.StatusServiceUnavailable)
	default:
		LoggerFrom(r.Context()).Error("request failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// DecodeJSON decodifica el body (con tope de tamaño); responde 400/413 y devuelve false si falla.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, false)
}

// DecodeJSONStrict es DecodeJSON rechazando campos desconocidos (PATCH).
func DecodeJSONStrict(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, true)
}

func decode(w http.ResponseWriter, r *http.Request, dst any, strict bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// RequireIdentity corta con 401 si el request no trae identidad.
func RequireIdentity(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	id, ok := middleware.GetIdentity(r.Context())
	if !ok || strings.TrimSpace(id.ID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return identity.Identity{}, false
	}
	return id, true
}
