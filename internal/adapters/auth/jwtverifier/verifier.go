package jwtverifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pet-adoption/internal/ports/auth"
)

var (
	ErrNoSecret   = errors.New("jwt secret not configured")
	ErrTokenEmpty = errors.New("token is empty")
	ErrNoSubject  = errors.New("token missing email and subject")
)

// TokenClaims es el payload esperado: email manda, sub es fallback.
type TokenClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// Verifier valida tokens HS256 firmados con un secreto compartido.
type Verifier struct {
	secret []byte
	issuer string
}

func New(secret, issuer string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Verifier{secret: []byte(secret), issuer: strings.TrimSpace(issuer)}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify failed: %w", err)
	}

	c, ok := parsed.Claims.(*TokenClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, jwt.ErrSignatureInvalid
	}

	email := strings.TrimSpace(c.Email)
	if email == "" && strings.TrimSpace(c.Subject) == "" {
		return auth.Claims{}, ErrNoSubject
	}

	return auth.Claims{
		UserID:      strings.TrimSpace(c.Subject),
		Email:       email,
		DisplayName: strings.TrimSpace(c.Name),
		ImageRef:    strings.TrimSpace(c.Picture),
	}, nil
}

// Sign firma un token con el mismo secreto. Lo usan los tests y el CLI de desarrollo.
func (v *Verifier) Sign(email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
