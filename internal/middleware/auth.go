package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vke007/jarvis-private/internal/auth"
	apierrors "github.com/vke007/jarvis-private/internal/errors"
)

const (
	ContextKeyEmail   = "caller_email"
	ContextKeyIsOwner = "caller_is_owner"
)

// RequireAuth verifies the Bearer token and exposes the caller identity
// to the wrapped handler. It aborts before the handler runs, so rejected
// requests cause no side effects.
func RequireAuth(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := bearerIdentity(c, secretKey)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apierrors.Unauthorized(c, "Token expired")
			} else {
				apierrors.Unauthorized(c, "")
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyEmail, identity.Email)
		c.Set(ContextKeyIsOwner, identity.IsOwner)
		c.Next()
	}
}

// RequireOwner is RequireAuth plus an owner-role check.
func RequireOwner(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := bearerIdentity(c, secretKey)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apierrors.Unauthorized(c, "Token expired")
			} else {
				apierrors.Unauthorized(c, "")
			}
			c.Abort()
			return
		}

		if !identity.IsOwner {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Set(ContextKeyEmail, identity.Email)
		c.Set(ContextKeyIsOwner, true)
		c.Next()
	}
}

func bearerIdentity(c *gin.Context, secretKey []byte) (auth.Identity, error) {
	header := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return auth.Identity{}, auth.ErrTokenInvalid
	}
	return auth.VerifyToken(token, secretKey)
}

// GetIdentity retrieves the verified caller identity from context.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	email, exists := c.Get(ContextKeyEmail)
	if !exists {
		return auth.Identity{}, false
	}

	emailStr, ok := email.(string)
	if !ok || emailStr == "" {
		return auth.Identity{}, false
	}

	return auth.Identity{
		Email:   emailStr,
		IsOwner: c.GetBool(ContextKeyIsOwner),
	}, true
}
