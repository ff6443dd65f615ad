package audit

import (
	"context"

	"gowaveline.backend/internal/domain/entities"
	"gowaveline.backend/internal/domain/repositories"
)

// Recorder appends audit entries. Implementations must never fail the
// caller's primary operation; errors are reported through the returned
// error for local logging only.
type Recorder interface {
	RecordAction(ctx context.Context, entry *entities.ActionLogEntry) error
	RecordFieldEdit(ctx context.Context, entry *entities.FieldEditEntry) error
}

// RepoRecorder writes audit entries straight to their tables
type RepoRecorder struct {
	actionLogs repositories.ActionLogRepository
	fieldEdits repositories.FieldEditRepository
}

// NewRepoRecorder creates a synchronous recorder
func NewRepoRecorder(actionLogs repositories.ActionLogRepository, fieldEdits repositories.FieldEditRepository) *RepoRecorder {
	return &RepoRecorder{actionLogs: actionLogs, fieldEdits: fieldEdits}
}

func (r *RepoRecorder) RecordAction(ctx context.Context, entry *entities.ActionLogEntry) error {
	return r.actionLogs.Append(ctx, entry)
}

func (r *RepoRecorder) RecordFieldEdit(ctx context.Context, entry *entities.FieldEditEntry) error {
	return r.fieldEdits.Append(ctx, entry)
}
