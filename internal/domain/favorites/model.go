package favorites

import (
	"encoding/json"
	"sort"
	"time"
)

// Set es el conjunto de petIDs favoritos. Pertenencia O(1); nunca hay duplicados.
// En JSON viaja como lista ordenada.
type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Slice devuelve los ids ordenados (salida determinística).
func (s Set) Slice() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = NewSet(ids...)
	return nil
}

// Record es el documento de favoritos de un usuario: se crea en el primer acceso y nunca se borra.
type Record struct {
	UserID    string
	PetIDs    Set
	CreatedAt time.Time
	UpdatedAt time.Time
}
