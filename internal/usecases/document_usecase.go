package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/domain/repositories"
)

// DocumentUsecase handles merchant document uploads and retrieval
type DocumentUsecase struct {
	docRepo repositories.DocumentRepository
	store   repositories.DocumentStore
	now     func() time.Time
}

// NewDocumentUsecase creates a new document usecase
func NewDocumentUsecase(docRepo repositories.DocumentRepository, store repositories.DocumentStore) *DocumentUsecase {
	return &DocumentUsecase{
		docRepo: docRepo,
		store:   store,
		now:     time.Now,
	}
}

// Upload validates and stores one file. Size is checked before content
// type, so an oversized file of a disallowed type reports the size error.
func (u *DocumentUsecase) Upload(ctx context.Context, input *entities.UploadDocumentInput, body io.Reader) (*entities.UploadDocumentResult, error) {
	if input.EntityID == uuid.Nil {
		return nil, domainerrors.BadRequest("entityId is required")
	}
	if input.Size <= 0 {
		return nil, domainerrors.BadRequest("file is required")
	}
	if input.Size > entities.MaxDocumentBytes {
		return nil, domainerrors.NewAppError(413, "file exceeds the 10MB limit", domainerrors.ErrFileTooLarge)
	}
	if !entities.MIMEAllowed(input.ContentType) {
		return nil, domainerrors.NewAppError(415, fmt.Sprintf("file type %s is not allowed", input.ContentType), domainerrors.ErrInvalidFileType)
	}

	key := u.storageKey(input)

	publicURL, err := u.store.Put(ctx, key, input.ContentType, body, input.Size)
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := &entities.MerchantDocument{
		MerchantID:     input.EntityID,
		DocumentType:   input.DocumentType,
		FileName:       input.FileName,
		FilePath:       key,
		FileType:       input.ContentType,
		FileSize:       input.Size,
		UploadedBy:     input.UploadedBy,
		EffectiveDate:  input.EffectiveDate,
		ExpirationDate: input.ExpirationDate,
	}

	if err := u.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	return &entities.UploadDocumentResult{
		Document:  doc,
		FilePath:  key,
		PublicURL: publicURL,
	}, nil
}

// ListByMerchant returns all documents uploaded for one application
func (u *DocumentUsecase) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entities.MerchantDocument, error) {
	return u.docRepo.ListByMerchantID(ctx, merchantID)
}

// storageKey builds the bucket path. The millisecond timestamp keeps
// repeat uploads of the same document type from colliding.
func (u *DocumentUsecase) storageKey(input *entities.UploadDocumentInput) string {
	ext := strings.TrimPrefix(filepath.Ext(input.FileName), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s_%d.%s", input.EntityID, input.DocumentType, u.now().UnixMilli(), ext)
}
