package auth

// Claims representa la información extraída del token.
// Email es el identificador estable del usuario en todo el dominio (favoritos, chat, ratings).
type Claims struct {
	UserID      string
	Email       string
	DisplayName string
	ImageRef    string
}
