package jwtverifier

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_RoundTrip(t *testing.T) {
	v, err := New("s3cret", "pet-adoption")
	require.NoError(t, err)

	tok, err := v.Sign("ana@example.com", "Ana", time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.DisplayName)
}

func TestVerify_Rejects(t *testing.T) {
	v, _ := New("s3cret", "pet-adoption")
	other, _ := New("otro", "pet-adoption")
	wrongIssuer, _ := New("s3cret", "someone-else")

	foreign, _ := other.Sign("ana@example.com", "Ana", time.Hour)
	expired, _ := v.Sign("ana@example.com", "Ana", -time.Minute)
	issuer, _ := wrongIssuer.Sign("ana@example.com", "Ana", time.Hour)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{Email: "ana@example.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	for name, tok := range map[string]string{
		"empty":        "  ",
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"expired":      expired,
		"wrong issuer": issuer,
		"alg none":     none,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tok)
			assert.Error(t, err)
		})
	}
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New(" ", "")
	assert.ErrorIs(t, err, ErrNoSecret)
}
