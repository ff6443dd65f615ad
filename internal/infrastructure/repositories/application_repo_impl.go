package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/domain/repositories"
	"gowaveline.backend/internal/infrastructure/models"
)

// ApplicationRepository implements merchant application data operations
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entities.MerchantApplication) error {
	m := r.toModel(app)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	app.ID = m.ID
	app.CreatedAt = m.CreatedAt
	app.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MerchantApplication, error) {
	var m models.MerchantApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByIDAndOTP requires an exact match on both columns. A missing row and
// any other lookup failure are indistinguishable to the caller by design
// of the verification flow.
func (r *ApplicationRepository) GetByIDAndOTP(ctx context.Context, id uuid.UUID, otp string) (*entities.MerchantApplication, error) {
	var m models.MerchantApplication
	if err := r.db.WithContext(ctx).Where("id = ? AND otp = ?", id, otp).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ApplicationRepository) UpdateFormData(ctx context.Context, id uuid.UUID, data []byte) error {
	result := r.db.WithContext(ctx).Model(&models.MerchantApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"application_data": string(data),
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ApplyAction is a plain last-write-wins update; concurrent admin actions
// are not version-checked.
func (r *ApplicationRepository) ApplyAction(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus, reason, actionedBy string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.MerchantApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        string(status),
			"action_reason": reason,
			"actioned_by":   actionedBy,
			"actioned_at":   now,
			"updated_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) UpdateField(ctx context.Context, id uuid.UUID, field repositories.ApplicationField, value string) (string, error) {
	var m models.MerchantApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrNotFound
		}
		return "", err
	}

	var old string
	switch field {
	case repositories.ApplicationFieldMerchantName:
		old = m.MerchantName
	case repositories.ApplicationFieldMerchantEmail:
		old = m.MerchantEmail
	default:
		return "", domainerrors.ErrInvalidInput
	}

	err := r.db.WithContext(ctx).Model(&models.MerchantApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			string(field): value,
			"updated_at":  time.Now(),
		}).Error
	if err != nil {
		return "", err
	}
	return old, nil
}

func (r *ApplicationRepository) List(ctx context.Context, status entities.ApplicationStatus, limit, offset int) ([]*entities.MerchantApplication, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MerchantApplication{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.MerchantApplication
	listQuery := query.Order("created_at DESC")
	if limit > 0 {
		listQuery = listQuery.Limit(limit).Offset(offset)
	}
	if err := listQuery.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.MerchantApplication, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *ApplicationRepository) toModel(app *entities.MerchantApplication) *models.MerchantApplication {
	m := &models.MerchantApplication{
		ID:            app.ID,
		MerchantName:  app.MerchantName,
		MerchantEmail: app.MerchantEmail,
		OTP:           app.OTP,
		Status:        string(app.Status),
		ActionReason:  app.ActionReason.String,
		ActionedBy:    app.ActionedBy.String,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
	if app.ApplicationData.Valid {
		m.ApplicationData = string(app.ApplicationData.JSON)
	} else {
		m.ApplicationData = "{}"
	}
	if app.ActionedAt.Valid {
		t := app.ActionedAt.Time
		m.ActionedAt = &t
	}
	return m
}

func (r *ApplicationRepository) toEntity(m *models.MerchantApplication) *entities.MerchantApplication {
	app := &entities.MerchantApplication{
		ID:            m.ID,
		MerchantName:  m.MerchantName,
		MerchantEmail: m.MerchantEmail,
		OTP:           m.OTP,
		Status:        entities.ApplicationStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.ApplicationData != "" {
		app.ApplicationData = null.JSONFrom([]byte(m.ApplicationData))
	}
	if m.ActionReason != "" {
		app.ActionReason = null.StringFrom(m.ActionReason)
	}
	if m.ActionedBy != "" {
		app.ActionedBy = null.StringFrom(m.ActionedBy)
	}
	if m.ActionedAt != nil {
		app.ActionedAt = null.TimeFrom(*m.ActionedAt)
	}
	return app
}
