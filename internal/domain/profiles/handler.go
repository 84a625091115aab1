package profiles

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/profile", getProfileHandler(svc))
	r.Patch("/me/profile", updateProfileHandler(svc))
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	ImageRef    *string `json:"image_ref"`
}

type ProfileResponse struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	ImageRef    string    `json:"image_ref"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateProfileResponse struct {
	Profile   ProfileResponse `json:"profile"`
	Reconcile Report          `json:"reconcile"`
}

func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		p, err := svc.Load(r.Context(), actor)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(p))
	}
}

// updateProfileHandler godoc
// @Summary Editar perfil
// @Description Cambia nombre y/o imagen y los propaga a publicaciones y conversaciones. La respuesta incluye el reporte de propagación (exitosos y fallidos).
// @Tags profiles
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, email del usuario"
// @Param payload body updateProfileRequest true "Campos a cambiar"
// @Success 200 {object} UpdateProfileResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /me/profile [patch]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req updateProfileRequest
		if !httpx.DecodeJSON(w, r, &req) {
			return
		}

		p, report, err := svc.Update(r.Context(), actor, UpdateInput{
			DisplayName: req.DisplayName,
			ImageRef:    req.ImageRef,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if report.Failed == nil {
			report.Failed = []Failure{}
		}
		httpx.WriteJSON(w, http.StatusOK, UpdateProfileResponse{Profile: toResponse(p), Reconcile: report})
	}
}

func toResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		ImageRef:    p.ImageRef,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
