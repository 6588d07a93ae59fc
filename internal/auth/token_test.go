package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("owner@example.com", true, testSecret)
	require.NoError(t, err)

	identity, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "owner@example.com", identity.Email)
	require.True(t, identity.IsOwner)
}

func TestTokenRoundTrip_Guest(t *testing.T) {
	token, err := IssueToken("guest@example.com", false, testSecret)
	require.NoError(t, err)

	identity, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "guest@example.com", identity.Email)
	require.False(t, identity.IsOwner)
}

func TestVerifyToken_Expired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Email:   "owner@example.com",
		IsOwner: true,
	})
	tokenString, err := expired.SignedString(testSecret)
	require.NoError(t, err)

	_, err = VerifyToken(tokenString, testSecret)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	token, err := IssueToken("owner@example.com", true, testSecret)
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("another-secret"))
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_Malformed(t *testing.T) {
	_, err := VerifyToken("not-a-token", testSecret)
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = VerifyToken("", testSecret)
	require.ErrorIs(t, err, ErrTokenInvalid)
}
