package repositories

import (
	"context"

	"github.com/google/uuid"
	"gowaveline.backend/internal/domain/entities"
)

// IndustryRepository defines industry catalog operations
type IndustryRepository interface {
	Create(ctx context.Context, industry *entities.Industry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Industry, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Industry, error)
	ListActive(ctx context.Context) ([]*entities.Industry, error)
}
