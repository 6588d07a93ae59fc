package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vke007/jarvis-private/internal/database"
	apierrors "github.com/vke007/jarvis-private/internal/errors"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/models"
)

type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// ListEvents returns the caller's events ordered by date.
func (h *EventHandler) ListEvents(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var events []models.Event
	err := database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// CreateEvent creates a calendar event for the caller.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateEventRequest struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description"`
		Date        time.Time `json:"date" binding:"required"`
		Time        string    `json:"time"`
		Type        string    `json:"type"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "title and date are required")
		return
	}

	if req.Type == "" {
		req.Type = "personal"
	}

	event := models.Event{
		Owner:       identity.Email,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.Date,
		EventTime:   req.Time,
		EventType:   req.Type,
	}

	if err := database.GetDB().Create(&event).Error; err != nil {
		apierrors.InternalError(c, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent applies a partial update to one of the caller's events.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	type UpdateEventRequest struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Date        *time.Time `json:"date"`
		Time        *string    `json:"time"`
		Type        *string    `json:"type"`
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var event models.Event
	err = database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		First(&event, id).Error
	if err != nil {
		apierrors.NotFound(c, "Event not found")
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			apierrors.BadRequest(c, "title cannot be empty")
			return
		}
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.EventDate = *req.Date
	}
	if req.Time != nil {
		event.EventTime = *req.Time
	}
	if req.Type != nil {
		event.EventType = *req.Type
	}

	if err := database.GetDB().Save(&event).Error; err != nil {
		apierrors.InternalError(c, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes one of the caller's events.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid event ID")
		return
	}

	var event models.Event
	err = database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		First(&event, id).Error
	if err != nil {
		apierrors.NotFound(c, "Event not found")
		return
	}

	if err := database.GetDB().Delete(&event).Error; err != nil {
		apierrors.InternalError(c, "Failed to delete event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
