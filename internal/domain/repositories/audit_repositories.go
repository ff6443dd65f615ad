package repositories

import (
	"context"

	"github.com/google/uuid"
	"gowaveline.backend/internal/domain/entities"
)

// ActionLogRepository defines the append-only disposition audit trail
type ActionLogRepository interface {
	Append(ctx context.Context, entry *entities.ActionLogEntry) error
	ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.ActionLogEntry, error)
}

// FieldEditRepository defines the append-only inline-edit audit trail
type FieldEditRepository interface {
	Append(ctx context.Context, entry *entities.FieldEditEntry) error
	ListByRecord(ctx context.Context, tableName, recordID string) ([]*entities.FieldEditEntry, error)
}
