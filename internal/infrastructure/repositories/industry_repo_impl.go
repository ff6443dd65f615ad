package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/infrastructure/models"
)

// IndustryRepository implements industry catalog operations
type IndustryRepository struct {
	db *gorm.DB
}

// NewIndustryRepository creates a new industry repository
func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

func (r *IndustryRepository) Create(ctx context.Context, industry *entities.Industry) error {
	m := &models.Industry{
		ID:          industry.ID,
		Name:        industry.Name,
		Slug:        industry.Slug,
		Description: industry.Description,
		IsActive:    industry.IsActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	industry.ID = m.ID
	industry.CreatedAt = m.CreatedAt
	industry.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *IndustryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Industry, error) {
	var m models.Industry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *IndustryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Industry, error) {
	var m models.Industry
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *IndustryRepository) ListActive(ctx context.Context) ([]*entities.Industry, error) {
	var ms []models.Industry
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Industry, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *IndustryRepository) toEntity(m *models.Industry) *entities.Industry {
	return &entities.Industry{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
