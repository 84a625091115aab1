package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThreadID_Scenario(t *testing.T) {
	id, err := ThreadID("b@x.com", "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "a@x.com_b@x.com", id)
}

func TestThreadID_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"a@x.com", "b@x.com"},
		{"Zoe@x.com", "adam@y.org"},
		{"user_1@x.com", "user@x.com"},
		{"ana@x.com", " ANA2@x.com "},
	}
	for _, p := range pairs {
		ab, err := ThreadID(p[0], p[1])
		require.NoError(t, err)
		ba, err := ThreadID(p[1], p[0])
		require.NoError(t, err)
		require.Equal(t, ab, ba, "pair %v", p)
	}
}

func TestThreadID_NormalizesCase(t *testing.T) {
	a, _ := ThreadID("A@X.com", "b@x.com")
	b, _ := ThreadID("a@x.com", "B@x.COM")
	require.Equal(t, a, b)
}

func TestThreadID_EscapingAvoidsAliasing(t *testing.T) {
	// Sin escape ambos pares serían "a_b_c".
	first, err := ThreadID("a", "b_c")
	require.NoError(t, err)
	second, err := ThreadID("a_b", "c")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.Equal(t, "a_b%5Fc", first)
	require.Equal(t, "a%5Fb_c", second)
}

func TestThreadID_EscapesPercentAndPathChars(t *testing.T) {
	id, err := ThreadID("a%5Fb", "c/d:e")
	require.NoError(t, err)
	require.Equal(t, "a%255Fb_c%2Fd%3Ae", id)
}

func TestThreadID_Rejects(t *testing.T) {
	_, err := ThreadID("", "b@x.com")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ThreadID("a@x.com", "  ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ThreadID("a@x.com", "A@X.COM")
	require.ErrorIs(t, err, ErrInvalidInput)
}
