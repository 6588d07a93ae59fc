package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/models"
	"github.com/vke007/jarvis-private/internal/repository"
	"github.com/vke007/jarvis-private/internal/services"
)

func setupSettingsRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db := setupDB(t, &models.Setting{})

	settingsService := services.NewSettingsService(repository.NewSettingRepository(db))
	require.NoError(t, settingsService.SeedDefaults())

	handler := NewSettingsHandler(settingsService)

	r := gin.New()
	api := r.Group("/api")
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(testSecret))
	{
		authed.GET("/safety", handler.GetSafety)
		authed.POST("/safety", handler.UpdateSafety)
		authed.GET("/theme", handler.GetTheme)
	}
	ownerOnly := api.Group("")
	ownerOnly.Use(middleware.RequireOwner(testSecret))
	{
		ownerOnly.POST("/theme", handler.UpdateTheme)
		ownerOnly.POST("/logo", handler.UploadLogo)
	}
	return r
}

func TestSettings_SafetyDefaultsOn(t *testing.T) {
	r := setupSettingsRouter(t)
	guest := bearerToken(t, "guest@example.com", false)

	w := jsonRequest(t, r, http.MethodGet, "/api/safety", guest, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var safety services.SafetySettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &safety))
	require.True(t, safety.VoiceEnabled)
	require.True(t, safety.WebSearchEnabled)
	require.True(t, safety.AIChatEnabled)
	require.True(t, safety.CodeGeneration)
}

func TestSettings_GuestCanWriteSafety(t *testing.T) {
	r := setupSettingsRouter(t)
	guest := bearerToken(t, "guest@example.com", false)

	w := jsonRequest(t, r, http.MethodPost, "/api/safety", guest, map[string]bool{
		"ai_chat_enabled": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = jsonRequest(t, r, http.MethodGet, "/api/safety", guest, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var safety services.SafetySettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &safety))
	require.False(t, safety.AIChatEnabled)
	// Untouched toggles keep their value.
	require.True(t, safety.VoiceEnabled)
}

func TestSettings_ThemeWriteIsOwnerOnly(t *testing.T) {
	r := setupSettingsRouter(t)
	owner := bearerToken(t, "owner@example.com", true)
	guest := bearerToken(t, "guest@example.com", false)

	w := jsonRequest(t, r, http.MethodPost, "/api/theme", guest, map[string]string{
		"primary_color": "#123456",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = jsonRequest(t, r, http.MethodPost, "/api/theme", owner, map[string]string{
		"primary_color": "#123456",
		"app_name":      "FRIDAY",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = jsonRequest(t, r, http.MethodGet, "/api/theme", guest, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theme services.ThemeSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &theme))
	require.Equal(t, "#123456", theme.PrimaryColor)
	require.Equal(t, "FRIDAY", theme.AppName)
	require.Equal(t, "#ff00ff", theme.AccentColor)
}

func TestSettings_LogoUpload(t *testing.T) {
	r := setupSettingsRouter(t)
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/logo", owner, map[string]string{
		"logo_base64": "data:image/png;base64,iVBORw0KGgo=",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "data:image/png;base64,iVBORw0KGgo=", body["url"])

	w = jsonRequest(t, r, http.MethodGet, "/api/theme", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var theme services.ThemeSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &theme))
	require.Equal(t, "data:image/png;base64,iVBORw0KGgo=", theme.LogoURL)

	// Missing payload is rejected.
	w = jsonRequest(t, r, http.MethodPost, "/api/logo", owner, map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
