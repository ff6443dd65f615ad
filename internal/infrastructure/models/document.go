package models

import (
	"time"

	"github.com/google/uuid"
)

type MerchantDocument struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	MerchantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentType   string    `gorm:"type:varchar(50);not null"`
	FileName       string    `gorm:"type:varchar(255);not null"`
	FilePath       string    `gorm:"type:text;not null"`
	FileType       string    `gorm:"type:varchar(128);not null"`
	FileSize       int64     `gorm:"not null"`
	UploadedBy     string    `gorm:"type:varchar(255)"`
	EffectiveDate  *time.Time
	ExpirationDate *time.Time
	CreatedAt      time.Time
}

func (MerchantDocument) TableName() string {
	return "merchant_documents"
}
