package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndLookups(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		Email:        "alice@gowaveline.test",
		Name:         "Alice",
		PasswordHash: "hash",
		Role:         entities.UserRoleAdmin,
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEqual(t, uuid.Nil, u.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, entities.UserRoleAdmin, byEmail.Role)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@gowaveline.test")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestIndustryRepository_CatalogOperations(t *testing.T) {
	db := newTestDB(t)
	createIndustryTable(t, db)
	repo := NewIndustryRepository(db)
	ctx := context.Background()

	cbd := &entities.Industry{Name: "CBD", Slug: "cbd", Description: "High-risk CBD merchants", IsActive: true}
	require.NoError(t, repo.Create(ctx, cbd))

	firearms := &entities.Industry{Name: "Firearms", Slug: "firearms", IsActive: true}
	require.NoError(t, repo.Create(ctx, firearms))

	retired := &entities.Industry{Name: "Retired Vertical", Slug: "retired", IsActive: false}
	require.NoError(t, repo.Create(ctx, retired))

	bySlug, err := repo.GetBySlug(ctx, "cbd")
	require.NoError(t, err)
	require.Equal(t, "CBD", bySlug.Name)

	byID, err := repo.GetByID(ctx, firearms.ID)
	require.NoError(t, err)
	require.Equal(t, "firearms", byID.Slug)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, ind := range active {
		require.True(t, ind.IsActive)
	}

	_, err = repo.GetBySlug(ctx, "nope")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
