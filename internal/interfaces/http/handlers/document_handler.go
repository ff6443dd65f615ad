package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/interfaces/http/middleware"
	"gowaveline.backend/internal/interfaces/http/response"
)

// DocumentService is the contract the document handler depends on
type DocumentService interface {
	Upload(ctx context.Context, input *entities.UploadDocumentInput, body io.Reader) (*entities.UploadDocumentResult, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.MerchantDocument, error)
}

// DocumentHandler handles document upload and retrieval endpoints
type DocumentHandler struct {
	docUsecase DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docUsecase DocumentService) *DocumentHandler {
	return &DocumentHandler{
		docUsecase: docUsecase,
	}
}

// Upload accepts one multipart file plus its describing fields.
// The content type is sniffed from the bytes, not taken from the client.
// POST /api/v1/documents/upload
func (h *DocumentHandler) Upload(c *gin.Context) {
	entityIDRaw := c.PostForm("entityId")
	if entityIDRaw == "" {
		response.Error(c, domainerrors.BadRequest("entityId is required"))
		return
	}
	entityID, err := uuid.Parse(entityIDRaw)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid entityId"))
		return
	}

	entityType, ok := entities.ParseEntityType(c.DefaultPostForm("entityType", string(entities.EntityTypeMerchant)))
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid entityType"))
		return
	}

	// A merchant session may only attach documents to its own application.
	if scopeID, scoped := middleware.GetApplicationID(c); scoped && entityID != scopeID {
		response.Error(c, domainerrors.Forbidden("Token is not valid for this application"))
		return
	}

	docTypeRaw := c.PostForm("docType")
	if docTypeRaw == "" {
		docTypeRaw = c.DefaultPostForm("documentType", string(entities.DocumentTypeOther))
	}
	docType, ok := entities.ParseDocumentType(docTypeRaw)
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid docType"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}
	defer file.Close()

	mime, err := mimetype.DetectReader(file)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("could not read file"))
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	uploadedBy, _ := middleware.GetUserEmail(c)
	if uploadedBy == "" {
		if scopeID, scoped := middleware.GetApplicationID(c); scoped {
			uploadedBy = "merchant:" + scopeID.String()
		}
	}

	input := &entities.UploadDocumentInput{
		EntityID:       entityID,
		EntityType:     entityType,
		DocumentType:   docType,
		FileName:       fileHeader.Filename,
		ContentType:    mime.String(),
		Size:           fileHeader.Size,
		UploadedBy:     uploadedBy,
		EffectiveDate:  parseDateField(c.PostForm("effectiveDate")),
		ExpirationDate: parseDateField(c.PostForm("expirationDate")),
	}

	result, err := h.docUsecase.Upload(c.Request.Context(), input, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success":   true,
		"metadata":  result.Document,
		"filePath":  result.FilePath,
		"publicUrl": result.PublicURL,
	})
}

// ListByMerchant returns all documents for one application
// GET /api/v1/documents/merchant/:id
func (h *DocumentHandler) ListByMerchant(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid merchant id"))
		return
	}

	docs, err := h.docUsecase.ListByMerchant(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":   true,
		"documents": docs,
	})
}

func parseDateField(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
