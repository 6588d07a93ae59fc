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

type TaskHandler struct{}

func NewTaskHandler() *TaskHandler {
	return &TaskHandler{}
}

// ListTasks returns the caller's tasks, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var tasks []models.Task
	err := database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a new task for the caller. The owner stamp always
// comes from the verified identity, never from the payload.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Text     string     `json:"text" binding:"required"`
		Priority string     `json:"priority"`
		DueDate  *time.Time `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "text required")
		return
	}

	if req.Priority == "" {
		req.Priority = "medium"
	}

	task := models.Task{
		Owner:    identity.Email,
		Text:     req.Text,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	}

	if err := database.GetDB().Create(&task).Error; err != nil {
		apierrors.InternalError(c, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update to one of the caller's tasks.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type UpdateTaskRequest struct {
		Text      *string    `json:"text"`
		Completed *bool      `json:"completed"`
		Priority  *string    `json:"priority"`
		DueDate   *time.Time `json:"due_date"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var task models.Task
	err = database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		First(&task, id).Error
	if err != nil {
		// A row owned by someone else looks identical to a missing one.
		apierrors.NotFound(c, "Task not found")
		return
	}

	if req.Text != nil {
		if *req.Text == "" {
			apierrors.BadRequest(c, "text cannot be empty")
			return
		}
		task.Text = *req.Text
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := database.GetDB().Save(&task).Error; err != nil {
		apierrors.InternalError(c, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes one of the caller's tasks.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	var task models.Task
	err = database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		First(&task, id).Error
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	if err := database.GetDB().Delete(&task).Error; err != nil {
		apierrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
