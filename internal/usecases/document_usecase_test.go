package usecases

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
)

type stubDocumentRepo struct {
	createErr error
	docs      []*entities.MerchantDocument
}

func (s *stubDocumentRepo) Create(ctx context.Context, doc *entities.MerchantDocument) error {
	if s.createErr != nil {
		return s.createErr
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	s.docs = append(s.docs, doc)
	return nil
}

func (s *stubDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.MerchantDocument, error) {
	for _, d := range s.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubDocumentRepo) ListByMerchantID(ctx context.Context, merchantID uuid.UUID) ([]*entities.MerchantDocument, error) {
	return s.docs, nil
}

type stubDocumentStore struct {
	putErr  error
	keys    []string
	written []byte
}

func (s *stubDocumentStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	s.keys = append(s.keys, key)
	data, _ := io.ReadAll(body)
	s.written = data
	return "https://bucket.test/" + key, nil
}

func validUpload(entityID uuid.UUID) *entities.UploadDocumentInput {
	return &entities.UploadDocumentInput{
		EntityID:     entityID,
		EntityType:   entities.EntityTypeMerchant,
		DocumentType: entities.DocumentTypeBankStatement,
		FileName:     "statement.pdf",
		ContentType:  "application/pdf",
		Size:         2048,
		UploadedBy:   "merchant",
	}
}

func TestDocumentUsecase_Upload_HappyPath(t *testing.T) {
	repo := &stubDocumentRepo{}
	store := &stubDocumentStore{}
	uc := NewDocumentUsecase(repo, store)
	fixed := time.UnixMilli(1700000000000)
	uc.now = func() time.Time { return fixed }

	entityID := uuid.New()
	result, err := uc.Upload(context.Background(), validUpload(entityID), bytes.NewReader([]byte("%PDF-1.7 content")))
	require.NoError(t, err)

	wantKey := fmt.Sprintf("%s/bank_statement_1700000000000.pdf", entityID)
	require.Equal(t, wantKey, result.FilePath)
	require.Equal(t, "https://bucket.test/"+wantKey, result.PublicURL)
	require.Equal(t, []byte("%PDF-1.7 content"), store.written)

	require.Len(t, repo.docs, 1)
	require.Equal(t, wantKey, repo.docs[0].FilePath)
	require.Equal(t, entityID, repo.docs[0].MerchantID)
}

func TestDocumentUsecase_Upload_RequiresEntityAndFile(t *testing.T) {
	uc := NewDocumentUsecase(&stubDocumentRepo{}, &stubDocumentStore{})

	input := validUpload(uuid.Nil)
	_, err := uc.Upload(context.Background(), input, strings.NewReader("x"))
	require.Error(t, err)

	input = validUpload(uuid.New())
	input.Size = 0
	_, err = uc.Upload(context.Background(), input, strings.NewReader(""))
	require.Error(t, err)
}

func TestDocumentUsecase_Upload_SizeLimit(t *testing.T) {
	store := &stubDocumentStore{}
	uc := NewDocumentUsecase(&stubDocumentRepo{}, store)

	input := validUpload(uuid.New())
	input.Size = entities.MaxDocumentBytes + 1
	_, err := uc.Upload(context.Background(), input, strings.NewReader("x"))
	require.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	require.Empty(t, store.keys, "nothing is stored when validation fails")

	// Exactly at the limit is accepted
	input.Size = entities.MaxDocumentBytes
	_, err = uc.Upload(context.Background(), input, strings.NewReader("x"))
	require.NoError(t, err)
}

func TestDocumentUsecase_Upload_MIMEAllowlist(t *testing.T) {
	uc := NewDocumentUsecase(&stubDocumentRepo{}, &stubDocumentStore{})

	input := validUpload(uuid.New())
	input.ContentType = "application/zip"
	_, err := uc.Upload(context.Background(), input, strings.NewReader("x"))
	require.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
}

func TestDocumentUsecase_Upload_SizeCheckedBeforeType(t *testing.T) {
	uc := NewDocumentUsecase(&stubDocumentRepo{}, &stubDocumentStore{})

	// Oversized and wrong type: the size error wins.
	input := validUpload(uuid.New())
	input.Size = entities.MaxDocumentBytes + 1
	input.ContentType = "application/zip"
	_, err := uc.Upload(context.Background(), input, strings.NewReader("x"))
	require.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestDocumentUsecase_Upload_ExtensionFallback(t *testing.T) {
	store := &stubDocumentStore{}
	uc := NewDocumentUsecase(&stubDocumentRepo{}, store)
	uc.now = func() time.Time { return time.UnixMilli(42) }

	input := validUpload(uuid.New())
	input.FileName = "statement"
	_, err := uc.Upload(context.Background(), input, strings.NewReader("x"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(store.keys[0], "_42.bin"), "key %s", store.keys[0])
}

func TestDocumentUsecase_Upload_StoreFailureAborts(t *testing.T) {
	repo := &stubDocumentRepo{}
	store := &stubDocumentStore{putErr: errors.New("bucket unavailable")}
	uc := NewDocumentUsecase(repo, store)

	_, err := uc.Upload(context.Background(), validUpload(uuid.New()), strings.NewReader("x"))
	require.Error(t, err)
	require.Empty(t, repo.docs, "no metadata row when the object write fails")
}
