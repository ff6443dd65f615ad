package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gowaveline.backend/internal/domain/entities"
	"gowaveline.backend/pkg/logger"
)

func init() {
	logger.Init("test")
}

type memRecorder struct {
	mu         sync.Mutex
	actionErr  error
	actions    []*entities.ActionLogEntry
	fieldEdits []*entities.FieldEditEntry
}

func (m *memRecorder) RecordAction(ctx context.Context, entry *entities.ActionLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.actionErr != nil {
		return m.actionErr
	}
	m.actions = append(m.actions, entry)
	return nil
}

func (m *memRecorder) RecordFieldEdit(ctx context.Context, entry *entities.FieldEditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fieldEdits = append(m.fieldEdits, entry)
	return nil
}

func TestDispatcher_DeliversEntries(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec)

	ctx := context.Background()
	require.NoError(t, d.RecordAction(ctx, &entities.ActionLogEntry{
		ApplicationID: uuid.New(),
		Action:        entities.ApplicationActionDecline,
		Reason:        "Fraud risk",
	}))
	require.NoError(t, d.RecordFieldEdit(ctx, &entities.FieldEditEntry{
		TableName: "merchant_applications",
		FieldName: "merchant_name",
	}))

	// Close drains the queue before returning.
	d.Close()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.actions, 1)
	require.Len(t, rec.fieldEdits, 1)
}

func TestDispatcher_RecorderErrorNeverSurfaces(t *testing.T) {
	rec := &memRecorder{actionErr: errors.New("table down")}
	d := NewDispatcher(rec)

	err := d.RecordAction(context.Background(), &entities.ActionLogEntry{
		ApplicationID: uuid.New(),
		Action:        entities.ApplicationActionRemove,
	})
	require.NoError(t, err, "the caller must never see audit failures")
	d.Close()
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&memRecorder{})
	d.Close()
	d.Close()
}

func TestRepoRecorder_PassesThrough(t *testing.T) {
	// RepoRecorder is the synchronous path used when ordering matters.
	actionRepo := &stubActionLogRepo{}
	fieldRepo := &stubFieldEditRepo{}
	rec := NewRepoRecorder(actionRepo, fieldRepo)

	ctx := context.Background()
	require.NoError(t, rec.RecordAction(ctx, &entities.ActionLogEntry{Reason: "Fraud risk"}))
	require.NoError(t, rec.RecordFieldEdit(ctx, &entities.FieldEditEntry{FieldName: "merchant_name"}))
	require.Len(t, actionRepo.entries, 1)
	require.Len(t, fieldRepo.entries, 1)
}

type stubActionLogRepo struct {
	entries []*entities.ActionLogEntry
}

func (s *stubActionLogRepo) Append(ctx context.Context, entry *entities.ActionLogEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubActionLogRepo) ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.ActionLogEntry, error) {
	return s.entries, nil
}

type stubFieldEditRepo struct {
	entries []*entities.FieldEditEntry
}

func (s *stubFieldEditRepo) Append(ctx context.Context, entry *entities.FieldEditEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubFieldEditRepo) ListByRecord(ctx context.Context, tableName, recordID string) ([]*entities.FieldEditEntry, error) {
	return s.entries, nil
}
