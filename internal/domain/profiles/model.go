package profiles

import "time"

// Profile es el registro del usuario. Se crea perezosamente con los datos del proveedor de identidad.
type Profile struct {
	UserID      string // email normalizado
	DisplayName string
	ImageRef    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
