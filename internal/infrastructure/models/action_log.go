package models

import (
	"time"

	"github.com/google/uuid"
)

type ActionLogEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Action        string    `gorm:"type:varchar(50);not null"`
	Reason        string    `gorm:"type:text;not null"`
	ActionedBy    string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time
}

func (ActionLogEntry) TableName() string {
	return "applications_action_log"
}
