package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vke007/jarvis-private/internal/database"
	apierrors "github.com/vke007/jarvis-private/internal/errors"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/models"
	"github.com/vke007/jarvis-private/internal/services"
)

// webSearchHints are message words that suggest the answer needs current
// information from the web.
var webSearchHints = []string{"news", "today", "latest", "search", "find", "weather"}

// ChatHandler proxies chat and code-generation prompts to the AI
// provider and manages the chat history.
type ChatHandler struct {
	aiService       services.Completer
	settingsService *services.SettingsService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(aiService services.Completer, settingsService *services.SettingsService) *ChatHandler {
	return &ChatHandler{
		aiService:       aiService,
		settingsService: settingsService,
	}
}

// Chat sends the caller's message to the AI provider and appends the
// exchange to the chat history. The feature gate is checked before any
// side effect; a disabled toggle leaves no history row.
func (h *ChatHandler) Chat(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	enabled, err := h.settingsService.IsEnabled(services.KeyAIChatEnabled)
	if err != nil {
		apierrors.InternalError(c, "Failed to read safety settings")
		return
	}
	if !enabled {
		apierrors.FeatureDisabled(c, "AI chat is disabled")
		return
	}

	type ChatRequest struct {
		Message string `json:"message" binding:"required"`
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "message required")
		return
	}

	useWeb := wantsWebSearch(req.Message)
	if useWeb {
		webEnabled, err := h.settingsService.IsEnabled(services.KeyWebSearchEnabled)
		if err != nil {
			apierrors.InternalError(c, "Failed to read safety settings")
			return
		}
		useWeb = webEnabled
	}

	prompt := fmt.Sprintf("You are JARVIS. Be concise. User: %s", req.Message)
	response, err := h.aiService.Complete(c.Request.Context(), prompt, useWeb)
	if err != nil {
		respondAIError(c, err)
		return
	}

	entry := models.ChatHistory{
		Owner:    identity.Email,
		Message:  req.Message,
		Response: response,
	}
	if err := database.GetDB().Create(&entry).Error; err != nil {
		apierrors.InternalError(c, "Failed to save chat history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": response,
		"used_web": useWeb,
	})
}

// History returns the caller's most recent exchanges in chronological
// order.
func (h *ChatHandler) History(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	var entries []models.ChatHistory
	err = database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch chat history")
		return
	}

	// Fetched newest-first to honor the limit, returned oldest-first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	c.JSON(http.StatusOK, entries)
}

// ClearHistory bulk-deletes the caller's chat history.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	err := database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		Delete(&models.ChatHistory{}).Error
	if err != nil {
		apierrors.InternalError(c, "Failed to clear chat history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GenerateCode asks the provider for code in the requested language. No
// history row is written for code generation.
func (h *ChatHandler) GenerateCode(c *gin.Context) {
	if _, exists := middleware.GetIdentity(c); !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	enabled, err := h.settingsService.IsEnabled(services.KeyCodeGeneration)
	if err != nil {
		apierrors.InternalError(c, "Failed to read safety settings")
		return
	}
	if !enabled {
		apierrors.FeatureDisabled(c, "Code generation is disabled")
		return
	}

	type CodeRequest struct {
		Prompt   string `json:"prompt" binding:"required"`
		Language string `json:"language"`
	}

	var req CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "prompt required")
		return
	}

	if req.Language == "" {
		req.Language = "python"
	}

	prompt := fmt.Sprintf("Generate %s code for: %s. Code only with comments.", req.Language, req.Prompt)
	code, err := h.aiService.Complete(c.Request.Context(), prompt, false)
	if err != nil {
		respondAIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": code})
}

func wantsWebSearch(message string) bool {
	lower := strings.ToLower(message)
	for _, hint := range webSearchHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func respondAIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAIKeyNotSet):
		apierrors.ConfigurationError(c, "OPENAI_API_KEY is not set. Configure it in your deployment environment.")
	case errors.Is(err, services.ErrUpstreamTimeout):
		apierrors.UpstreamTimeout(c)
	case errors.Is(err, services.ErrUpstream):
		apierrors.UpstreamError(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
