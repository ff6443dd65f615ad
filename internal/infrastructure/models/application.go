package models

import (
	"time"

	"github.com/google/uuid"
)

type MerchantApplication struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	MerchantName    string    `gorm:"type:varchar(255);not null"`
	MerchantEmail   string    `gorm:"type:varchar(255);not null;index"`
	OTP             string    `gorm:"column:otp;type:varchar(16);not null"`
	ApplicationData string    `gorm:"type:jsonb;default:'{}'"`
	Status          string    `gorm:"type:varchar(50);not null;default:'incomplete';index"`
	ActionReason    string    `gorm:"type:text"`
	ActionedBy      string    `gorm:"type:varchar(255)"`
	ActionedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (MerchantApplication) TableName() string {
	return "merchant_applications"
}
