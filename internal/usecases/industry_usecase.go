package usecases

import (
	"context"

	"gowaveline.backend/internal/domain/entities"
	"gowaveline.backend/internal/domain/repositories"
)

// IndustryUsecase serves the industry catalog
type IndustryUsecase struct {
	industryRepo repositories.IndustryRepository
}

// NewIndustryUsecase creates a new industry usecase
func NewIndustryUsecase(industryRepo repositories.IndustryRepository) *IndustryUsecase {
	return &IndustryUsecase{industryRepo: industryRepo}
}

// ListActive returns every industry currently shown on the site
func (u *IndustryUsecase) ListActive(ctx context.Context) ([]*entities.Industry, error) {
	return u.industryRepo.ListActive(ctx)
}

// GetBySlug returns one industry by its URL slug
func (u *IndustryUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Industry, error) {
	return u.industryRepo.GetBySlug(ctx, slug)
}
