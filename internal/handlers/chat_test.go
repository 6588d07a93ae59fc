package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/models"
	"github.com/vke007/jarvis-private/internal/repository"
	"github.com/vke007/jarvis-private/internal/services"
	"gorm.io/gorm"
)

type stubCompleter struct {
	response string
	err      error
	calls    int
	lastWeb  bool
}

func (s *stubCompleter) Complete(_ context.Context, _ string, useWeb bool) (string, error) {
	s.calls++
	s.lastWeb = useWeb
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func setupChatRouter(t *testing.T, completer services.Completer) (*gin.Engine, *gorm.DB, *services.SettingsService) {
	t.Helper()

	db := setupDB(t, &models.ChatHistory{}, &models.Setting{})

	settingsService := services.NewSettingsService(repository.NewSettingRepository(db))
	require.NoError(t, settingsService.SeedDefaults())

	handler := NewChatHandler(completer, settingsService)

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(testSecret))
	{
		api.POST("/chat", handler.Chat)
		api.GET("/chat/history", handler.History)
		api.DELETE("/chat/history", handler.ClearHistory)
		api.POST("/code", handler.GenerateCode)
	}
	return r, db, settingsService
}

func TestChat_SavesHistory(t *testing.T) {
	stub := &stubCompleter{response: "Certainly, sir."}
	r, db, _ := setupChatRouter(t, stub)
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/chat", owner, map[string]string{
		"message": "hello there",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Certainly, sir.", body["response"])
	require.Equal(t, false, body["used_web"])

	var entries []models.ChatHistory
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	require.Equal(t, "owner@example.com", entries[0].Owner)
	require.Equal(t, "hello there", entries[0].Message)
	require.Equal(t, "Certainly, sir.", entries[0].Response)
}

func TestChat_DisabledLeavesNoHistory(t *testing.T) {
	stub := &stubCompleter{response: "should not be called"}
	r, db, settingsService := setupChatRouter(t, stub)
	owner := bearerToken(t, "owner@example.com", true)

	off := false
	require.NoError(t, settingsService.UpdateSafety(services.UpdateSafetyInput{AIChatEnabled: &off}))

	w := jsonRequest(t, r, http.MethodPost, "/api/chat", owner, map[string]string{
		"message": "hello",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "FEATURE_DISABLED", body["code"])

	require.Zero(t, stub.calls)

	var count int64
	require.NoError(t, db.Model(&models.ChatHistory{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestChat_WebSearchFollowsToggle(t *testing.T) {
	stub := &stubCompleter{response: "sunny"}
	r, _, settingsService := setupChatRouter(t, stub)
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/chat", owner, map[string]string{
		"message": "what is the weather like",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, stub.lastWeb)

	off := false
	require.NoError(t, settingsService.UpdateSafety(services.UpdateSafetyInput{WebSearchEnabled: &off}))

	w = jsonRequest(t, r, http.MethodPost, "/api/chat", owner, map[string]string{
		"message": "what is the weather like",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, stub.lastWeb)
}

func TestChat_UpstreamTimeout(t *testing.T) {
	stub := &stubCompleter{err: fmt.Errorf("%w: request timed out", services.ErrUpstreamTimeout)}
	r, db, _ := setupChatRouter(t, stub)
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/chat", owner, map[string]string{
		"message": "hello",
	})
	require.Equal(t, http.StatusGatewayTimeout, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "UPSTREAM_TIMEOUT", body["code"])

	// A failed call must not leave a history row.
	var count int64
	require.NoError(t, db.Model(&models.ChatHistory{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestChat_KeyNotConfigured(t *testing.T) {
	r, _, _ := setupChatRouter(t, services.NewAIService("", 0))
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/chat", owner, map[string]string{
		"message": "hello",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "CONFIGURATION_ERROR", body["code"])
}

func TestChatHistory_ScopedAndOrdered(t *testing.T) {
	stub := &stubCompleter{response: "ok"}
	r, db, _ := setupChatRouter(t, stub)
	owner := bearerToken(t, "owner@example.com", true)
	_ = bearerToken(t, "guest@example.com", false)

	for i := 1; i <= 3; i++ {
		w := jsonRequest(t, r, http.MethodPost, "/api/chat", owner, map[string]string{
			"message": fmt.Sprintf("message %d", i),
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	require.NoError(t, db.Create(&models.ChatHistory{
		Owner:    "guest@example.com",
		Message:  "guest message",
		Response: "ok",
	}).Error)

	w := jsonRequest(t, r, http.MethodGet, "/api/chat/history", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.ChatHistory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	require.Equal(t, "message 1", entries[0].Message)
	require.Equal(t, "message 3", entries[2].Message)

	w = jsonRequest(t, r, http.MethodGet, "/api/chat/history?limit=2", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "message 2", entries[0].Message)
	require.Equal(t, "message 3", entries[1].Message)
}

func TestChatHistory_ClearIsScoped(t *testing.T) {
	stub := &stubCompleter{response: "ok"}
	r, db, _ := setupChatRouter(t, stub)
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/chat", owner, map[string]string{"message": "hi"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Create(&models.ChatHistory{
		Owner:    "guest@example.com",
		Message:  "guest message",
		Response: "ok",
	}).Error)

	w = jsonRequest(t, r, http.MethodDelete, "/api/chat/history", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var remaining []models.ChatHistory
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	require.Equal(t, "guest@example.com", remaining[0].Owner)
}

func TestGenerateCode_Gated(t *testing.T) {
	stub := &stubCompleter{response: "print('hi')"}
	r, _, settingsService := setupChatRouter(t, stub)
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/code", owner, map[string]string{
		"prompt": "say hi",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "print('hi')", body["code"])

	off := false
	require.NoError(t, settingsService.UpdateSafety(services.UpdateSafetyInput{CodeGeneration: &off}))

	w = jsonRequest(t, r, http.MethodPost, "/api/code", owner, map[string]string{
		"prompt": "say hi",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, 1, stub.calls)
}
