package pets

import (
	"strings"
	"time"
)

// MaxImages es el tope de fotos por publicación.
const MaxImages = 3

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ParseSex acepta "Male"/"female"/... ; vacío o desconocido => ok=false.
func ParseSex(s string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, true
	case "female", "f":
		return SexFemale, true
	case "unknown":
		return SexUnknown, true
	default:
		return "", false
	}
}

// Pet es una publicación de adopción.
// Los datos del dueño (OwnerDisplayName, OwnerImageRef) son una copia desnormalizada;
// profiles.Reconciler los mantiene al día.
type Pet struct {
	ID string

	Name     string
	Category string
	Breed    string
	Age      float64 // años; ausente = 0
	Sex      Sex
	Weight   float64 // kg
	Address  string
	About    string

	Images          []string
	CoverImageIndex int

	OwnerID          string
	OwnerDisplayName string
	OwnerImageRef    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoverImage devuelve la imagen de portada, o "" si no hay imágenes.
func (p Pet) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	if p.CoverImageIndex < 0 || p.CoverImageIndex >= len(p.Images) {
		return p.Images[0]
	}
	return p.Images[p.CoverImageIndex]
}
