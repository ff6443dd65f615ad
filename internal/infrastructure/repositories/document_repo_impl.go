package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/infrastructure/models"
)

// DocumentRepository implements merchant document metadata operations
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *entities.MerchantDocument) error {
	m := &models.MerchantDocument{
		ID:             doc.ID,
		MerchantID:     doc.MerchantID,
		DocumentType:   string(doc.DocumentType),
		FileName:       doc.FileName,
		FilePath:       doc.FilePath,
		FileType:       doc.FileType,
		FileSize:       doc.FileSize,
		UploadedBy:     doc.UploadedBy,
		EffectiveDate:  doc.EffectiveDate,
		ExpirationDate: doc.ExpirationDate,
		CreatedAt:      time.Now(),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	doc.ID = m.ID
	doc.CreatedAt = m.CreatedAt
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MerchantDocument, error) {
	var m models.MerchantDocument
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *DocumentRepository) ListByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]*entities.MerchantDocument, error) {
	var ms []models.MerchantDocument
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.MerchantDocument, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *DocumentRepository) toEntity(m *models.MerchantDocument) *entities.MerchantDocument {
	return &entities.MerchantDocument{
		ID:             m.ID,
		MerchantID:     m.MerchantID,
		DocumentType:   entities.DocumentType(m.DocumentType),
		FileName:       m.FileName,
		FilePath:       m.FilePath,
		FileType:       m.FileType,
		FileSize:       m.FileSize,
		UploadedBy:     m.UploadedBy,
		EffectiveDate:  m.EffectiveDate,
		ExpirationDate: m.ExpirationDate,
		CreatedAt:      m.CreatedAt,
	}
}
