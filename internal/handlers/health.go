package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vke007/jarvis-private/internal/database"
	apierrors "github.com/vke007/jarvis-private/internal/errors"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/models"
	"gorm.io/gorm"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// todayLog fetches the caller's health row for the current date,
// creating a zeroed one on first touch. Repeat calls return the same
// row; the (owner, log_date) unique index backs the upsert.
func todayLog(email string) (*models.HealthLog, error) {
	var log models.HealthLog
	err := database.GetDB().
		Scopes(database.OwnedBy(email)).
		Where("log_date = ?", today()).
		First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	log = models.HealthLog{
		Owner:   email,
		LogDate: today(),
	}
	if err := database.GetDB().Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// GetToday returns today's health log, creating it if absent.
func (h *HealthHandler) GetToday(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	log, err := todayLog(identity.Email)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch health log")
		return
	}

	c.JSON(http.StatusOK, log)
}

// UpdateToday applies a partial update to today's health log.
func (h *HealthHandler) UpdateToday(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateHealthRequest struct {
		Steps     *int     `json:"steps"`
		Water     *float64 `json:"water"`
		Sleep     *float64 `json:"sleep"`
		Calories  *int     `json:"calories"`
		Weight    *float64 `json:"weight"`
		HeartRate *int     `json:"heart_rate"`
	}

	var req UpdateHealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	log, err := todayLog(identity.Email)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch health log")
		return
	}

	if req.Steps != nil {
		log.Steps = *req.Steps
	}
	if req.Water != nil {
		log.Water = *req.Water
	}
	if req.Sleep != nil {
		log.SleepHrs = *req.Sleep
	}
	if req.Calories != nil {
		log.Calories = *req.Calories
	}
	if req.Weight != nil {
		log.WeightKg = req.Weight
	}
	if req.HeartRate != nil {
		log.HeartRate = req.HeartRate
	}

	if err := database.GetDB().Save(log).Error; err != nil {
		apierrors.InternalError(c, "Failed to update health log")
		return
	}

	c.JSON(http.StatusOK, log)
}
