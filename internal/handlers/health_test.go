package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/models"
)

func healthRouter() *gin.Engine {
	handler := NewHealthHandler()

	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(testSecret))
	{
		api.GET("/health/today", handler.GetToday)
		api.POST("/health", handler.UpdateToday)
	}
	return r
}

func TestHealth_TodayIsIdempotent(t *testing.T) {
	setupDB(t, &models.HealthLog{})
	r := healthRouter()
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodGet, "/api/health/today", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var first models.HealthLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.NotZero(t, first.ID)
	require.Zero(t, first.Steps)

	w = jsonRequest(t, r, http.MethodGet, "/api/health/today", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var second models.HealthLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.Equal(t, first.ID, second.ID)
}

func TestHealth_PartialUpdate(t *testing.T) {
	setupDB(t, &models.HealthLog{})
	r := healthRouter()
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/health", owner, map[string]interface{}{
		"steps": 4200,
		"water": 1.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A second update with other fields must not clobber the first.
	w = jsonRequest(t, r, http.MethodPost, "/api/health", owner, map[string]interface{}{
		"sleep":  7.5,
		"weight": 80.2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var log models.HealthLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	require.Equal(t, 4200, log.Steps)
	require.Equal(t, 1.5, log.Water)
	require.Equal(t, 7.5, log.SleepHrs)
	require.NotNil(t, log.WeightKg)
	require.Equal(t, 80.2, *log.WeightKg)
	require.Nil(t, log.HeartRate)
}

func TestHealth_PerOwnerRows(t *testing.T) {
	db := setupDB(t, &models.HealthLog{})
	r := healthRouter()
	owner := bearerToken(t, "owner@example.com", true)
	guest := bearerToken(t, "guest@example.com", false)

	w := jsonRequest(t, r, http.MethodPost, "/api/health", owner, map[string]interface{}{"steps": 9000})
	require.Equal(t, http.StatusOK, w.Code)

	// The guest gets their own zeroed row, not the owner's.
	w = jsonRequest(t, r, http.MethodGet, "/api/health/today", guest, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var log models.HealthLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	require.Zero(t, log.Steps)

	var count int64
	require.NoError(t, db.Model(&models.HealthLog{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}
