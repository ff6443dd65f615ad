package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/interfaces/http/response"
	"gowaveline.backend/internal/usecases"
)

// PDFService is the contract the PDF handler depends on
type PDFService interface {
	Generate(ctx context.Context, industrySlug string, formData map[string]interface{}) (*usecases.PreAppResult, error)
}

// PDFHandler handles pre-application PDF generation
type PDFHandler struct {
	pdfUsecase PDFService
}

// NewPDFHandler creates a new PDF handler
func NewPDFHandler(pdfUsecase PDFService) *PDFHandler {
	return &PDFHandler{
		pdfUsecase: pdfUsecase,
	}
}

// GeneratePreApp renders the pre-application contract and returns it as
// a base64 data URL. Failures use the same envelope with success false.
// POST /api/v1/pdf/generate-preapp
func (h *PDFHandler) GeneratePreApp(c *gin.Context) {
	var input struct {
		IndustrySlug string                 `json:"industrySlug"`
		IndustryID   string                 `json:"industryId"`
		FormData     map[string]interface{} `json:"formData"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	slug := input.IndustrySlug
	if slug == "" {
		slug = input.IndustryID
	}

	result, err := h.pdfUsecase.Generate(c.Request.Context(), slug, input.FormData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "PDF generation failed",
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":      true,
		"pdfBase64":    result.PDFBase64,
		"businessName": result.BusinessName,
	})
}
