package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vke007/jarvis-private/internal/errors"
	"github.com/vke007/jarvis-private/internal/services"
)

// SettingsHandler exposes the safety toggles, theme values and logo
// upload. Reads are open to any authenticated caller; theme and logo
// writes are owner-only (enforced by the route's guard). Safety writes
// are deliberately open to any authenticated caller, matching the
// deployed behavior this service replaces.
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSafety returns the safety toggles.
func (h *SettingsHandler) GetSafety(c *gin.Context) {
	safety, err := h.settingsService.Safety()
	if err != nil {
		apierrors.InternalError(c, "Failed to read safety settings")
		return
	}

	c.JSON(http.StatusOK, safety)
}

// UpdateSafety writes the supplied safety toggles.
func (h *SettingsHandler) UpdateSafety(c *gin.Context) {
	var req services.UpdateSafetyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.settingsService.UpdateSafety(req); err != nil {
		apierrors.InternalError(c, "Failed to update safety settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetTheme returns the theme values.
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	theme, err := h.settingsService.Theme()
	if err != nil {
		apierrors.InternalError(c, "Failed to read theme")
		return
	}

	c.JSON(http.StatusOK, theme)
}

// UpdateTheme writes the supplied theme values. Owner-only.
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	var req services.UpdateThemeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.settingsService.UpdateTheme(req); err != nil {
		apierrors.InternalError(c, "Failed to update theme")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UploadLogo stores a base64 logo payload. Owner-only.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	type LogoRequest struct {
		LogoBase64 string `json:"logo_base64" binding:"required"`
	}

	var req LogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "logo_base64 required")
		return
	}

	if err := h.settingsService.SetLogo(req.LogoBase64); err != nil {
		apierrors.InternalError(c, "Failed to store logo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "url": req.LogoBase64})
}
