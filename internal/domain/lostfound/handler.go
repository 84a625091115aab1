package lostfound

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"pet-adoption/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/lostfound", listPostsHandler(svc))
	r.Post("/lostfound", createPostHandler(svc))
}

type createPostRequest struct {
	Kind        string `json:"kind" enums:"lost,found"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImageRef    string `json:"image_ref"`
}

type PostResponse struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageRef    string    `json:"image_ref,omitempty"`
	AuthorID    string    `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// listPostsHandler godoc
// @Summary Perdidos y encontrados
// @Tags lostfound
// @Produce json
// @Success 200 {array} PostResponse
// @Router /lostfound [get]
func listPostsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, lo.Map(items, func(p Post, _ int) PostResponse { return toResponse(p) }))
	}
}

// createPostHandler godoc
// @Summary Publicar perdido/encontrado
// @Tags lostfound
// @Accept json
// @Produce json
// @Param payload body createPostRequest true "title, description y location obligatorios"
// @Success 201 {object} PostResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /lostfound [post]
func createPostHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req createPostRequest
		if !httpx.DecodeJSON(w, r, &req) {
			return
		}

		p, err := svc.Create(r.Context(), actor, CreateInput{
			Kind:        req.Kind,
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			ImageRef:    req.ImageRef,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(p))
	}
}

func toResponse(p Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Kind:        p.Kind,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		ImageRef:    p.ImageRef,
		AuthorID:    p.AuthorID,
		CreatedAt:   p.CreatedAt,
	}
}
