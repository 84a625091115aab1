package favorites

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me/favorites", func(fr chi.Router) {
		fr.Get("/", getFavoritesHandler(svc))
		fr.Get("/pets", listFavoritePetsHandler(svc))

		fr.Get("/{petID}", isFavoriteHandler(svc))
		fr.Put("/{petID}", addFavoriteHandler(svc))
		fr.Delete("/{petID}", removeFavoriteHandler(svc))
	})
}

type FavoritesResponse struct {
	PetIDs []string `json:"pet_ids"`
}

type isFavoriteResponse struct {
	PetID    string `json:"pet_id"`
	Favorite bool   `json:"favorite"`
}

// getFavoritesHandler godoc
// @Summary Mis favoritos
// @Description Devuelve los ids favoritos del usuario. El primer acceso crea el registro vacío.
// @Tags favorites
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, email del usuario"
// @Success 200 {object} FavoritesResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/favorites [get]
func getFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		set, err := svc.Load(r.Context(), actor)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, FavoritesResponse{PetIDs: set.Slice()})
	}
}

func listFavoritePetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		items, err := svc.ListPets(r.Context(), actor)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, pets.ToResponses(items))
	}
}

func isFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		petID := chi.URLParam(r, "petID")
		fav, err := svc.IsFavorite(r.Context(), actor, petID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, isFavoriteResponse{PetID: petID, Favorite: fav})
	}
}

// addFavoriteHandler godoc
// @Summary Marcar favorito
// @Description Idempotente: marcar dos veces deja un solo id.
// @Tags favorites
// @Produce json
// @Param petID path string true "Pet ID"
// @Success 200 {object} FavoritesResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/favorites/{petID} [put]
func addFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		set, err := svc.Add(r.Context(), actor, chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, FavoritesResponse{PetIDs: set.Slice()})
	}
}

func removeFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		set, err := svc.Remove(r.Context(), actor, chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, FavoritesResponse{PetIDs: set.Slice()})
	}
}
