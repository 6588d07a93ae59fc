package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenValidity = 30 * 24 * time.Hour

var (
	// ErrTokenExpired means the token was well-formed and correctly
	// signed but past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure:
	// malformed structure, bad signature, wrong signing key.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims carries the caller identity inside the signed token.
type Claims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	IsOwner bool   `json:"is_owner"`
}

// Identity is the verified result handed to the middleware.
type Identity struct {
	Email   string
	IsOwner bool
}

// IssueToken produces a signed HS256 token embedding the caller's email
// and role, valid for 30 days. There is no refresh mechanism; expired
// callers re-authenticate.
func IssueToken(email string, isOwner bool, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email:   email,
		IsOwner: isOwner,
	})

	return token.SignedString(secretKey)
}

// VerifyToken checks the signature and expiry and returns the embedded
// identity.
func VerifyToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}

	if !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	return Identity{Email: claims.Email, IsOwner: claims.IsOwner}, nil
}
