package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gowaveline.backend/internal/domain/entities"
	"gowaveline.backend/internal/infrastructure/models"
)

// ActionLogRepository implements the append-only disposition audit trail
type ActionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository creates a new action log repository
func NewActionLogRepository(db *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{db: db}
}

func (r *ActionLogRepository) Append(ctx context.Context, entry *entities.ActionLogEntry) error {
	m := &models.ActionLogEntry{
		ID:            entry.ID,
		ApplicationID: entry.ApplicationID,
		Action:        string(entry.Action),
		Reason:        entry.Reason,
		ActionedBy:    entry.ActionedBy,
		CreatedAt:     time.Now(),
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

func (r *ActionLogRepository) ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.ActionLogEntry, error) {
	var ms []models.ActionLogEntry
	if err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.ActionLogEntry, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.ActionLogEntry{
			ID:            ms[i].ID,
			ApplicationID: ms[i].ApplicationID,
			Action:        entities.ApplicationAction(ms[i].Action),
			Reason:        ms[i].Reason,
			ActionedBy:    ms[i].ActionedBy,
			CreatedAt:     ms[i].CreatedAt,
		})
	}
	return items, nil
}
