package identity

import "strings"

// Identity es la persona que actúa, tal como la entrega el proveedor de identidad.
// ID es el identificador estable (email verificado); nunca se lee de estado global.
type Identity struct {
	ID          string
	DisplayName string
	ImageRef    string
}

// NormalizeID: trim + lower-case. Los emails se comparan sin importar mayúsculas.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func (i Identity) Normalized() Identity {
	return Identity{
		ID:          NormalizeID(i.ID),
		DisplayName: strings.TrimSpace(i.DisplayName),
		ImageRef:    strings.TrimSpace(i.ImageRef),
	}
}

func (i Identity) IsZero() bool {
	return strings.TrimSpace(i.ID) == ""
}
