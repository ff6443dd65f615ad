package repositories

import (
	"context"
	"io"

	"github.com/google/uuid"
	"gowaveline.backend/internal/domain/entities"
)

// DocumentRepository defines merchant document metadata operations.
// Rows are append-only; there is no update or delete.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entities.MerchantDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MerchantDocument, error)
	ListByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]*entities.MerchantDocument, error)
}

// DocumentStore uploads binary objects to the bucket and reports where
// they landed.
type DocumentStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (publicURL string, err error)
}
