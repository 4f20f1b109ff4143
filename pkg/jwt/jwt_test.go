package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, expiresAt, err := m.GenerateAccessToken(42, "alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewManager("one", time.Hour).GenerateAccessToken(1, "a")
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := m.GenerateAccessToken(1, "a")
	require.NoError(t, err)

	_, err = NewManager("secret", time.Minute).ValidateAccessToken(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestManager_RejectsNonAccessToken(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Type:   "refresh",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour).ValidateAccessToken(token)
	assert.ErrorContains(t, err, "invalid token type")
}
