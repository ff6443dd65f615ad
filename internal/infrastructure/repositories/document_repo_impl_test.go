package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
)

func TestDocumentRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createDocumentTable(t, db)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	doc := &entities.MerchantDocument{
		MerchantID:   merchantID,
		DocumentType: entities.DocumentTypeBankStatement,
		FileName:     "statement.pdf",
		FilePath:     merchantID.String() + "/bank_statement_1700000000000.pdf",
		FileType:     "application/pdf",
		FileSize:     2048,
		UploadedBy:   "merchant",
	}
	require.NoError(t, repo.Create(ctx, doc))
	require.NotEqual(t, uuid.Nil, doc.ID)
	require.False(t, doc.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, doc.FilePath, got.FilePath)
	require.Equal(t, entities.DocumentTypeBankStatement, got.DocumentType)

	// A second upload of the same type appends, never replaces
	second := &entities.MerchantDocument{
		MerchantID:   merchantID,
		DocumentType: entities.DocumentTypeBankStatement,
		FileName:     "statement2.pdf",
		FilePath:     merchantID.String() + "/bank_statement_1700000001000.pdf",
		FileType:     "application/pdf",
		FileSize:     4096,
	}
	require.NoError(t, repo.Create(ctx, second))

	docs, err := repo.ListByMerchantID(ctx, merchantID)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	docs, err = repo.ListByMerchantID(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, docs)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
