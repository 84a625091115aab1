// Package catalog arma la vista filtrada y ordenada del listado de mascotas.
package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pet-adoption/internal/domain/pets"
)

type SortKey string

const (
	SortNone     SortKey = "none"
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
	SortAgeAsc   SortKey = "age-asc"
	SortAgeDesc  SortKey = "age-desc"
)

// CategoryAll desactiva el filtro por categoría.
const CategoryAll = "All"

// ParseSortKey: claves desconocidas o vacías => SortNone.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNameAsc, SortNameDesc, SortAgeAsc, SortAgeDesc:
		return k
	default:
		return SortNone
	}
}

// FilterAndSort es pura: no toca el slice de entrada y siempre devuelve uno nuevo.
//
// Orden de aplicación: categoría -> búsqueda (nombre o raza) -> orden.
// Los empates se desempatan por ID para que el resultado no dependa del orden de entrada.
func FilterAndSort(items []pets.Pet, category, term string, key SortKey) []pets.Pet {
	category = strings.TrimSpace(category)
	term = strings.ToLower(strings.TrimSpace(term))

	out := lo.Filter(items, func(p pets.Pet, _ int) bool {
		if category != "" && !strings.EqualFold(category, CategoryAll) && !strings.EqualFold(p.Category, category) {
			return false
		}
		if term == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Breed), term)
	})

	switch ParseSortKey(string(key)) {
	case SortNameAsc:
		sortByName(out, false)
	case SortNameDesc:
		sortByName(out, true)
	case SortAgeAsc:
		sortByAge(out, false)
	case SortAgeDesc:
		sortByAge(out, true)
	}
	return out
}

func sortByName(items []pets.Pet, desc bool) {
	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	col := collate.New(language.Und)
	sort.SliceStable(items, func(i, j int) bool {
		c := col.CompareString(items[i].Name, items[j].Name)
		if c == 0 {
			return items[i].ID < items[j].ID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func sortByAge(items []pets.Pet, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Age, items[j].Age
		if a == b {
			return items[i].ID < items[j].ID
		}
		if desc {
			return a > b
		}
		return a < b
	})
}
