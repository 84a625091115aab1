package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/catalog", listCatalogHandler(svc))
}

// listCatalogHandler godoc
// @Summary Catálogo de adopción
// @Description Lista todas las mascotas publicadas filtrando por categoría y texto (nombre o raza) y ordenando por nombre o edad.
// @Tags catalog
// @Produce json
// @Param category query string false "Categoría exacta (sin distinguir mayúsculas). All o vacío = todas"
// @Param q query string false "Texto a buscar en nombre o raza"
// @Param sort query string false "none | name-asc | name-desc | age-asc | age-desc"
// @Success 200 {array} pets.PetResponse
// @Failure 503 {string} string "store unavailable, retry"
// @Router /catalog [get]
func listCatalogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		items, err := svc.List(r.Context(), Query{
			Category: q.Get("category"),
			Term:     q.Get("q"),
			Sort:     ParseSortKey(q.Get("sort")),
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, pets.ToResponses(items))
	}
}
