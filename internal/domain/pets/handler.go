package pets

import (
	"net/http"
	"time"

	"pet-adoption/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))

		// Solo el dueño edita / borra / cambia portada
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
		pr.Put("/{petID}/cover", setCoverHandler(svc))
	})

	// Mis publicaciones
	r.Get("/me/pets", listMyPetsHandler(svc))
}

// createPetRequest es el cuerpo para publicar una mascota.
type createPetRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Breed           string   `json:"breed"`
	Age             *float64 `json:"age"`
	Sex             string   `json:"sex" enums:"male,female,unknown"`
	Weight          *float64 `json:"weight"`
	Address         string   `json:"address"`
	About           string   `json:"about"`
	Images          []string `json:"images"` // URLs http(s) o data URIs, máx 3
	CoverImageIndex int      `json:"cover_image_index"`
}

type updatePetRequest struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Breed           *string  `json:"breed"`
	Age             *float64 `json:"age"`
	Sex             *string  `json:"sex"`
	Weight          *float64 `json:"weight"`
	Address         *string  `json:"address"`
	About           *string  `json:"about"`
	Images          []string `json:"images"`
	CoverImageIndex *int     `json:"cover_image_index"`
}

type setCoverRequest struct {
	Index *int `json:"index"`
}

// PetResponse es la representación pública de una mascota (la reutiliza catalog/favorites).
type PetResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Breed            string    `json:"breed"`
	Age              float64   `json:"age"`
	Sex              Sex       `json:"sex"`
	Weight           float64   `json:"weight"`
	Address          string    `json:"address"`
	About            string    `json:"about"`
	Images           []string  `json:"images"`
	CoverImageIndex  int       `json:"cover_image_index"`
	CoverImage       string    `json:"cover_image"`
	OwnerID          string    `json:"owner_id"`
	OwnerDisplayName string    `json:"owner_display_name"`
	OwnerImageRef    string    `json:"owner_image_ref"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Publicar mascota
// @Description Crea una publicación de adopción. Requiere name, category, breed, age, sex, weight, address, about y entre 1 y 3 imágenes.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, email del usuario"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} PetResponse
// @Failure 400 {string} string "invalid json / campos faltantes / imágenes inválidas"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req createPetRequest
		if !httpx.DecodeJSON(w, r, &req) {
			return
		}

		p, err := svc.Create(r.Context(), actor, CreateInput{
			Name:            req.Name,
			Category:        req.Category,
			Breed:           req.Breed,
			Age:             req.Age,
			Sex:             req.Sex,
			Weight:          req.Weight,
			Address:         req.Address,
			About:           req.About,
			Images:          req.Images,
			CoverImageIndex: req.CoverImageIndex,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, ToResponse(p))
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	// Público: cualquiera puede ver una publicación
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req updatePetRequest
		if !httpx.DecodeJSONStrict(w, r, &req) {
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), actor, UpdateInput{
			Name:            req.Name,
			Category:        req.Category,
			Breed:           req.Breed,
			Age:             req.Age,
			Sex:             req.Sex,
			Weight:          req.Weight,
			Address:         req.Address,
			About:           req.About,
			Images:          req.Images,
			CoverImageIndex: req.CoverImageIndex,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, ToResponse(updated))
	}
}

func setCoverHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req setCoverRequest
		if !httpx.DecodeJSON(w, r, &req) {
			return
		}
		if req.Index == nil {
			http.Error(w, "index required", http.StatusBadRequest)
			return
		}

		p, err := svc.SetCover(r.Context(), chi.URLParam(r, "petID"), actor, *req.Index)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), actor); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByOwner(r.Context(), actor.ID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}

func ToResponse(p Pet) PetResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return PetResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		Breed:            p.Breed,
		Age:              p.Age,
		Sex:              p.Sex,
		Weight:           p.Weight,
		Address:          p.Address,
		About:            p.About,
		Images:           images,
		CoverImageIndex:  p.CoverImageIndex,
		CoverImage:       p.CoverImage(),
		OwnerID:          p.OwnerID,
		OwnerDisplayName: p.OwnerDisplayName,
		OwnerImageRef:    p.OwnerImageRef,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}
