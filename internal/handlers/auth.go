package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vke007/jarvis-private/internal/errors"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates the owner or an active guest and returns a token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    result.Token,
		"name":     result.Name,
		"email":    result.Email,
		"is_owner": result.IsOwner,
	})
}

// Verify confirms the caller's token and returns the resolved identity.
func (h *AuthHandler) Verify(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"email":    identity.Email,
		"is_owner": identity.IsOwner,
		"name":     h.authService.DisplayName(identity),
	})
}

// ForgotPassword starts the owner password-reset flow.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	type ForgotRequest struct {
		Email string `json:"email" binding:"required"`
	}

	var req ForgotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	baseURL := scheme + "://" + c.Request.Host

	if err := h.authService.RequestPasswordReset(req.Email, baseURL); err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Reset link sent to your email",
	})
}

// ResetPassword consumes a one-time reset token. The owner password
// itself lives in deployment configuration, so a verified token tells
// the operator to rotate it there.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	type ResetRequest struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}

	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Token and new password required")
		return
	}

	if err := h.authService.ConsumePasswordReset(req.Token); err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Token verified. Update OWNER_PASSWORD in your deployment configuration.",
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOwnerPasswordNotSet):
		apierrors.ConfigurationError(c, "OWNER_PASSWORD is not set. Configure it in your deployment environment.")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrAccessDenied):
		apierrors.AccessDenied(c)
	case errors.Is(err, services.ErrNotOwnerEmail):
		apierrors.Forbidden(c, "Only the owner can reset the password")
	case errors.Is(err, services.ErrResetTokenInvalid):
		apierrors.InvalidOrExpiredToken(c)
	case errors.Is(err, services.ErrSMTPPasswordNotSet):
		apierrors.ConfigurationError(c, "SMTP_PASSWORD is not set. Configure it in your deployment environment.")
	case errors.Is(err, services.ErrMailDelivery):
		apierrors.MailDeliveryError(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
