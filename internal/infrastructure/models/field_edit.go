package models

import (
	"time"

	"github.com/google/uuid"
)

type FieldEditEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Table     string    `gorm:"column:table_name;type:varchar(128);not null;index:idx_field_edit_record"`
	RecordID  string    `gorm:"type:varchar(128);not null;index:idx_field_edit_record"`
	FieldName string    `gorm:"type:varchar(128);not null"`
	OldValue  string    `gorm:"type:text"`
	NewValue  string    `gorm:"type:text"`
	ChangedBy string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

func (FieldEditEntry) TableName() string {
	return "field_edit_history"
}
