package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vke007/jarvis-private/internal/errors"
	"github.com/vke007/jarvis-private/internal/services"
)

// GuestHandler exposes owner-only guest account management.
type GuestHandler struct {
	guestService *services.GuestService
}

// NewGuestHandler creates a new GuestHandler.
func NewGuestHandler(guestService *services.GuestService) *GuestHandler {
	return &GuestHandler{
		guestService: guestService,
	}
}

// ListGuests returns every guest account.
func (h *GuestHandler) ListGuests(c *gin.Context) {
	guests, err := h.guestService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to list guests")
		return
	}

	c.JSON(http.StatusOK, guests)
}

// CreateGuest adds a new guest account.
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	type CreateGuestRequest struct {
		Email    string `json:"email" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "email, name and password are required")
		return
	}

	guest, err := h.guestService.Create(services.CreateGuestInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondGuestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, guest)
}

// UpdateGuest applies a partial update to a guest account.
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid guest ID")
		return
	}

	type UpdateGuestRequest struct {
		Name     *string `json:"name"`
		IsActive *bool   `json:"is_active"`
		Password *string `json:"password"`
	}

	var req UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.Update(id, services.UpdateGuestInput{
		Name:     req.Name,
		IsActive: req.IsActive,
		Password: req.Password,
	})
	if err != nil {
		respondGuestError(c, err)
		return
	}

	c.JSON(http.StatusOK, guest)
}

// DeleteGuest hard-deletes a guest account.
func (h *GuestHandler) DeleteGuest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid guest ID")
		return
	}

	if err := h.guestService.Delete(id); err != nil {
		respondGuestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func respondGuestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGuestFieldsRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrGuestIsOwner):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateAccount):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrGuestNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
