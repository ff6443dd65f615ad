package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gowaveline.backend/internal/domain/entities"
	"gowaveline.backend/internal/infrastructure/models"
)

// FieldEditRepository implements the append-only inline-edit audit trail
type FieldEditRepository struct {
	db *gorm.DB
}

// NewFieldEditRepository creates a new field edit repository
func NewFieldEditRepository(db *gorm.DB) *FieldEditRepository {
	return &FieldEditRepository{db: db}
}

func (r *FieldEditRepository) Append(ctx context.Context, entry *entities.FieldEditEntry) error {
	m := &models.FieldEditEntry{
		ID:        entry.ID,
		Table:     entry.TableName,
		RecordID:  entry.RecordID,
		FieldName: entry.FieldName,
		OldValue:  entry.OldValue,
		NewValue:  entry.NewValue,
		ChangedBy: entry.ChangedBy,
		CreatedAt: time.Now(),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	entry.CreatedAt = m.CreatedAt
	return nil
}

func (r *FieldEditRepository) ListByRecord(ctx context.Context, tableName, recordID string) ([]*entities.FieldEditEntry, error) {
	var ms []models.FieldEditEntry
	if err := r.db.WithContext(ctx).
		Where("table_name = ? AND record_id = ?", tableName, recordID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.FieldEditEntry, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.FieldEditEntry{
			ID:        ms[i].ID,
			TableName: ms[i].Table,
			RecordID:  ms[i].RecordID,
			FieldName: ms[i].FieldName,
			OldValue:  ms[i].OldValue,
			NewValue:  ms[i].NewValue,
			ChangedBy: ms[i].ChangedBy,
			CreatedAt: ms[i].CreatedAt,
		})
	}
	return items, nil
}
