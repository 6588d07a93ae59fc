package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeAccessDenied       = "ACCESS_DENIED"

	// Authorization errors
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeFeatureDisabled = "FEATURE_DISABLED"

	// Validation errors
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeInvalidOrExpired = "INVALID_OR_EXPIRED_TOKEN"

	// Resource errors
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeDuplicateAccount = "DUPLICATE_ACCOUNT"

	// Operational errors
	ErrCodeConfiguration   = "CONFIGURATION_ERROR"
	ErrCodeUpstreamError   = "UPSTREAM_ERROR"
	ErrCodeUpstreamTimeout = "UPSTREAM_TIMEOUT"
	ErrCodeMailDelivery    = "MAIL_DELIVERY_ERROR"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, message))
}

// InvalidCredentials sends a 401 response for a failed credential check
func InvalidCredentials(c *gin.Context) {
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeInvalidCredentials, "Invalid credentials"))
}

// AccessDenied sends a 403 response. The body is identical whether the
// account is unknown or deactivated, so callers cannot enumerate guests.
func AccessDenied(c *gin.Context) {
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeAccessDenied, "Access denied"))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Owner access required"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// FeatureDisabled sends a 403 response for a switched-off feature
func FeatureDisabled(c *gin.Context, message string) {
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeFeatureDisabled, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// InvalidOrExpiredToken sends a 400 response for a bad reset token
func InvalidOrExpiredToken(c *gin.Context) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidOrExpired, "Invalid or expired token"))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeDuplicateAccount, message))
}

// ConfigurationError sends a 500 response naming the missing setting.
// This is the one path where detail is surfaced on purpose: it is an
// operator signal, not a credential signal.
func ConfigurationError(c *gin.Context, message string) {
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeConfiguration, message))
}

// UpstreamError sends a 502 response for an AI-provider failure
func UpstreamError(c *gin.Context, message string) {
	if message == "" {
		message = "Upstream provider error"
	}
	RespondWithError(c, http.StatusBadGateway, NewAPIError(ErrCodeUpstreamError, message))
}

// UpstreamTimeout sends a 504 response
func UpstreamTimeout(c *gin.Context) {
	RespondWithError(c, http.StatusGatewayTimeout, NewAPIError(ErrCodeUpstreamTimeout, "Upstream provider timed out"))
}

// MailDeliveryError sends a 502 response for a failed mail dispatch
func MailDeliveryError(c *gin.Context, message string) {
	if message == "" {
		message = "Failed to send email"
	}
	RespondWithError(c, http.StatusBadGateway, NewAPIError(ErrCodeMailDelivery, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}
