package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navportal/navportal/internal/auth"
)

func TestTokens(t *testing.T) {
	_, err := auth.NewTokens(nil, time.Hour)
	require.ErrorIs(t, err, auth.ErrSecretEmpty)

	tokens, err := auth.NewTokens([]byte("secret"), time.Hour)
	require.NoError(t, err)

	raw, err := tokens.Issue(42, "jane")
	require.NoError(t, err)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "jane", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	other, err := auth.NewTokens([]byte("other"), time.Hour)
	require.NoError(t, err)

	_, err = other.Parse(raw)
	require.ErrorIs(t, err, auth.ErrTokenInvalid, "wrong secret")

	_, err = tokens.Parse("not.a.token")
	require.ErrorIs(t, err, auth.ErrTokenInvalid)

	expired, err := auth.NewTokens([]byte("secret"), -time.Minute)
	require.NoError(t, err)

	raw, err = expired.Issue(42, "jane")
	require.NoError(t, err)

	_, err = tokens.Parse(raw)
	require.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokensRejectOtherAlgorithms(t *testing.T) {
	tokens, err := auth.NewTokens([]byte("secret"), time.Hour)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           1,
		Username:         "admin",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Parse(unsigned)
	require.ErrorIs(t, err, auth.ErrTokenInvalid)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{UserID: 1, Username: "admin"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tokens.Parse(noExpiry)
	require.ErrorIs(t, err, auth.ErrTokenInvalid)
}
