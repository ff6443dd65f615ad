package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/interfaces/http/response"
)

// IndustryService is the contract the industry handler depends on
type IndustryService interface {
	ListActive(ctx context.Context) ([]*entities.Industry, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Industry, error)
}

// IndustryHandler serves the industry catalog
type IndustryHandler struct {
	industryUsecase IndustryService
}

// NewIndustryHandler creates a new industry handler
func NewIndustryHandler(industryUsecase IndustryService) *IndustryHandler {
	return &IndustryHandler{
		industryUsecase: industryUsecase,
	}
}

// List returns every active industry
// GET /api/v1/industries
func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.industryUsecase.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"industries": industries,
	})
}

// GetBySlug returns one industry
// GET /api/v1/industries/:slug
func (h *IndustryHandler) GetBySlug(c *gin.Context) {
	industry, err := h.industryUsecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Industry not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, industry)
}
