package repositories

import (
	"context"

	"github.com/google/uuid"
	"gowaveline.backend/internal/domain/entities"
)

// ApplicationField is the closed set of inline-editable application columns
type ApplicationField string

const (
	ApplicationFieldMerchantName  ApplicationField = "merchant_name"
	ApplicationFieldMerchantEmail ApplicationField = "merchant_email"
)

// ParseApplicationField maps a raw column name onto the closed enum.
func ParseApplicationField(raw string) (ApplicationField, bool) {
	switch ApplicationField(raw) {
	case ApplicationFieldMerchantName:
		return ApplicationFieldMerchantName, true
	case ApplicationFieldMerchantEmail:
		return ApplicationFieldMerchantEmail, true
	}
	return "", false
}

// ApplicationRepository defines merchant application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.MerchantApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MerchantApplication, error)
	// GetByIDAndOTP returns the application only when both the id and the
	// stored one-time code match exactly.
	GetByIDAndOTP(ctx context.Context, id uuid.UUID, otp string) (*entities.MerchantApplication, error)
	// UpdateFormData replaces the free-form application_data blob.
	UpdateFormData(ctx context.Context, id uuid.UUID, data []byte) error
	// ApplyAction persists a status transition together with its reason and
	// actor. Last write wins; no version check is performed.
	ApplyAction(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus, reason, actionedBy string) error
	// UpdateField writes a single inline-editable column and returns the
	// previous value.
	UpdateField(ctx context.Context, id uuid.UUID, field ApplicationField, value string) (old string, err error)
	List(ctx context.Context, status entities.ApplicationStatus, limit, offset int) ([]*entities.MerchantApplication, int64, error)
}
