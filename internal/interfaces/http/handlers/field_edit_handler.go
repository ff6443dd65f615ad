package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/interfaces/http/middleware"
	"gowaveline.backend/internal/interfaces/http/response"
)

// FieldEditService is the contract the field edit handler depends on
type FieldEditService interface {
	Edit(ctx context.Context, input *entities.FieldEditInput) (string, error)
	History(ctx context.Context, tableName, recordID string) ([]*entities.FieldEditEntry, error)
}

// FieldEditHandler handles inline record edits from the admin UI
type FieldEditHandler struct {
	editUsecase FieldEditService
}

// NewFieldEditHandler creates a new field edit handler
func NewFieldEditHandler(editUsecase FieldEditService) *FieldEditHandler {
	return &FieldEditHandler{
		editUsecase: editUsecase,
	}
}

// Edit updates one allowlisted column on one record
// POST /api/v1/admin/edit-field
func (h *FieldEditHandler) Edit(c *gin.Context) {
	var input entities.FieldEditInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	// The acting admin comes from the session, not the request body.
	if email, ok := middleware.GetUserEmail(c); ok {
		input.UserID = email
	}

	newValue, err := h.editUsecase.Edit(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Record not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":  true,
		"message":  "Field updated",
		"newValue": newValue,
	})
}

// History returns the edit trail for one record
// GET /api/v1/admin/edit-field/history?tableName=&recordId=
func (h *FieldEditHandler) History(c *gin.Context) {
	tableName := c.Query("tableName")
	recordID := c.Query("recordId")
	if tableName == "" || recordID == "" {
		response.Error(c, domainerrors.BadRequest("tableName and recordId are required"))
		return
	}

	entries, err := h.editUsecase.History(c.Request.Context(), tableName, recordID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"history": entries,
	})
}
