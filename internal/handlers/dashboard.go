package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vke007/jarvis-private/internal/database"
	apierrors "github.com/vke007/jarvis-private/internal/errors"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/models"
	"gorm.io/gorm"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// GetDashboard returns the caller's summary counts and today's health
// snapshot. Unlike the health routes this never creates a row; an absent
// log shows up as zeroes.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	db := database.GetDB()

	var pendingTasks int64
	db.Model(&models.Task{}).
		Scopes(database.OwnedBy(identity.Email)).
		Where("completed = ?", false).
		Count(&pendingTasks)

	var totalEvents int64
	db.Model(&models.Event{}).
		Scopes(database.OwnedBy(identity.Email)).
		Count(&totalEvents)

	var totalNotes int64
	db.Model(&models.Note{}).
		Scopes(database.OwnedBy(identity.Email)).
		Count(&totalNotes)

	var health gin.H
	var log models.HealthLog
	err := db.
		Scopes(database.OwnedBy(identity.Email)).
		Where("log_date = ?", today()).
		First(&log).Error
	switch {
	case err == nil:
		health = gin.H{
			"steps":    log.Steps,
			"water":    log.Water,
			"sleep":    log.SleepHrs,
			"calories": log.Calories,
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		health = gin.H{"steps": 0, "water": 0, "sleep": 0, "calories": 0}
	default:
		apierrors.InternalError(c, "Failed to fetch dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pending_tasks": pendingTasks,
		"total_events":  totalEvents,
		"total_notes":   totalNotes,
		"health":        health,
	})
}
