package ratings

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners/{ownerID}/ratings", func(rr chi.Router) {
		rr.Get("/", summaryHandler(svc))
		rr.Post("/", submitRatingHandler(svc))
		rr.Get("/mine", myRatingHandler(svc))
	})
}

type submitRatingRequest struct {
	Value int    `json:"value" minimum:"1" maximum:"5"`
	PetID string `json:"pet_id"`
}

type SummaryResponse struct {
	OwnerID string  `json:"owner_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type RatingResponse struct {
	OwnerID   string    `json:"owner_id"`
	RaterID   string    `json:"rater_id"`
	Value     int       `json:"value"`
	PetID     string    `json:"pet_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// summaryHandler godoc
// @Summary Promedio del dueño
// @Description Promedio redondeado a 1 decimal y cantidad de calificaciones válidas. Sin calificaciones => 0 y 0.
// @Tags ratings
// @Produce json
// @Param ownerID path string true "Email del dueño"
// @Success 200 {object} SummaryResponse
// @Router /owners/{ownerID}/ratings [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context(), ownerParam(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, SummaryResponse{OwnerID: sum.OwnerID, Average: sum.Average, Count: sum.Count})
	}
}

// submitRatingHandler godoc
// @Summary Calificar dueño
// @Description Una sola calificación por usuario y dueño; no se puede modificar.
// @Tags ratings
// @Accept json
// @Produce json
// @Param ownerID path string true "Email del dueño"
// @Param payload body submitRatingRequest true "value 1..5"
// @Success 201 {object} RatingResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "already rated"
// @Router /owners/{ownerID}/ratings [post]
func submitRatingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req submitRatingRequest
		if !httpx.DecodeJSON(w, r, &req) {
			return
		}

		rating, err := svc.Submit(r.Context(), actor, SubmitInput{
			OwnerID: ownerParam(r),
			Value:   req.Value,
			PetID:   req.PetID,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(rating))
	}
}

func myRatingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		rating, err := svc.MyRating(r.Context(), actor, ownerParam(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(rating))
	}
}

func ownerParam(r *http.Request) string {
	raw := chi.URLParam(r, "ownerID")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func toResponse(r Rating) RatingResponse {
	return RatingResponse{
		OwnerID:   r.OwnerID,
		RaterID:   r.RaterID,
		Value:     r.Value,
		PetID:     r.PetID,
		CreatedAt: r.CreatedAt,
	}
}
