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

type NoteHandler struct{}

func NewNoteHandler() *NoteHandler {
	return &NoteHandler{}
}

// noteResponse carries the tags as the ordered list the API exposes
// instead of the comma-joined storage form.
type noteResponse struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(note models.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.TagList(),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ListNotes returns the caller's notes, newest first.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var notes []models.Note
	err := database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch notes")
		return
	}

	responses := make([]noteResponse, len(notes))
	for i, note := range notes {
		responses[i] = toNoteResponse(note)
	}

	c.JSON(http.StatusOK, responses)
}

// CreateNote creates a note for the caller.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateNoteRequest struct {
		Title   string   `json:"title" binding:"required"`
		Content string   `json:"content" binding:"required"`
		Tags    []string `json:"tags"`
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "title and content are required")
		return
	}

	note := models.Note{
		Owner:   identity.Email,
		Title:   req.Title,
		Content: req.Content,
	}
	note.SetTags(req.Tags)

	if err := database.GetDB().Create(&note).Error; err != nil {
		apierrors.InternalError(c, "Failed to create note")
		return
	}

	c.JSON(http.StatusCreated, toNoteResponse(note))
}

// UpdateNote applies a partial update to one of the caller's notes.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	type UpdateNoteRequest struct {
		Title   *string   `json:"title"`
		Content *string   `json:"content"`
		Tags    *[]string `json:"tags"`
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var note models.Note
	err = database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		First(&note, id).Error
	if err != nil {
		apierrors.NotFound(c, "Note not found")
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			apierrors.BadRequest(c, "title cannot be empty")
			return
		}
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Tags != nil {
		note.SetTags(*req.Tags)
	}

	if err := database.GetDB().Save(&note).Error; err != nil {
		apierrors.InternalError(c, "Failed to update note")
		return
	}

	c.JSON(http.StatusOK, toNoteResponse(note))
}

// DeleteNote deletes one of the caller's notes.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	var note models.Note
	err = database.GetDB().
		Scopes(database.OwnedBy(identity.Email)).
		First(&note, id).Error
	if err != nil {
		apierrors.NotFound(c, "Note not found")
		return
	}

	if err := database.GetDB().Delete(&note).Error; err != nil {
		apierrors.InternalError(c, "Failed to delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
