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

func eventRouter() *gin.Engine {
	handler := NewEventHandler()

	r := gin.New()
	events := r.Group("/api/events")
	events.Use(middleware.RequireAuth(testSecret))
	{
		events.GET("", handler.ListEvents)
		events.POST("", handler.CreateEvent)
		events.PUT("/:id", handler.UpdateEvent)
		events.DELETE("/:id", handler.DeleteEvent)
	}
	return r
}

func TestEvents_CreateDefaultsType(t *testing.T) {
	setupDB(t, &models.Event{})
	r := eventRouter()
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/events", owner, map[string]string{
		"title": "Dentist",
		"date":  "2026-09-14T00:00:00Z",
		"time":  "09:30",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var event models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	require.Equal(t, "personal", event.EventType)
	require.Equal(t, "09:30", event.EventTime)
}

func TestEvents_DateRequired(t *testing.T) {
	setupDB(t, &models.Event{})
	r := eventRouter()
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/events", owner, map[string]string{
		"title": "No date",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvents_ListOrderedByDate(t *testing.T) {
	setupDB(t, &models.Event{})
	r := eventRouter()
	owner := bearerToken(t, "owner@example.com", true)

	for _, e := range []map[string]string{
		{"title": "Later", "date": "2026-12-01T00:00:00Z"},
		{"title": "Sooner", "date": "2026-09-01T00:00:00Z"},
	} {
		w := jsonRequest(t, r, http.MethodPost, "/api/events", owner, e)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := jsonRequest(t, r, http.MethodGet, "/api/events", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 2)
	require.Equal(t, "Sooner", events[0].Title)
	require.Equal(t, "Later", events[1].Title)
}

func TestEvents_PartialUpdate(t *testing.T) {
	setupDB(t, &models.Event{})
	r := eventRouter()
	owner := bearerToken(t, "owner@example.com", true)

	w := jsonRequest(t, r, http.MethodPost, "/api/events", owner, map[string]string{
		"title": "Standup",
		"date":  "2026-09-01T00:00:00Z",
		"type":  "work",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, r, http.MethodPut, "/api/events/1", owner, map[string]string{
		"time": "10:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var event models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	require.Equal(t, "Standup", event.Title)
	require.Equal(t, "work", event.EventType)
	require.Equal(t, "10:00", event.EventTime)
}

func TestEvents_CrossOwnerReadsAsNotFound(t *testing.T) {
	setupDB(t, &models.Event{})
	r := eventRouter()
	owner := bearerToken(t, "owner@example.com", true)
	guest := bearerToken(t, "guest@example.com", false)

	w := jsonRequest(t, r, http.MethodPost, "/api/events", owner, map[string]string{
		"title": "Private",
		"date":  "2026-09-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, r, http.MethodDelete, "/api/events/1", guest, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
