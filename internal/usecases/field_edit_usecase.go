package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gowaveline.backend/internal/audit"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/domain/repositories"
	"gowaveline.backend/pkg/logger"
)

// FieldEditUsecase handles inline edits to application records
type FieldEditUsecase struct {
	appRepo    repositories.ApplicationRepository
	fieldEdits repositories.FieldEditRepository
	recorder   audit.Recorder
}

// NewFieldEditUsecase creates a new field edit usecase
func NewFieldEditUsecase(appRepo repositories.ApplicationRepository, fieldEdits repositories.FieldEditRepository, recorder audit.Recorder) *FieldEditUsecase {
	return &FieldEditUsecase{
		appRepo:    appRepo,
		fieldEdits: fieldEdits,
		recorder:   recorder,
	}
}

// Edit updates one allowlisted column and records the change. The column
// update is authoritative; the history write is best-effort.
func (u *FieldEditUsecase) Edit(ctx context.Context, input *entities.FieldEditInput) (string, error) {
	if !entities.FieldEditable(input.TableName, input.FieldName) {
		return "", domainerrors.BadRequest("field is not editable")
	}

	field, ok := repositories.ParseApplicationField(input.FieldName)
	if !ok {
		return "", domainerrors.BadRequest("field is not editable")
	}

	recordID, err := uuid.Parse(input.RecordID)
	if err != nil {
		return "", domainerrors.BadRequest("invalid record id")
	}

	old, err := u.appRepo.UpdateField(ctx, recordID, field, input.NewValue)
	if err != nil {
		return "", err
	}

	if err := u.recorder.RecordFieldEdit(ctx, &entities.FieldEditEntry{
		TableName: input.TableName,
		RecordID:  input.RecordID,
		FieldName: input.FieldName,
		OldValue:  old,
		NewValue:  input.NewValue,
		ChangedBy: input.UserID,
	}); err != nil {
		logger.Warn(ctx, "field edit history write failed",
			zap.String("record_id", input.RecordID),
			zap.String("field", input.FieldName),
			zap.Error(err))
	}

	return input.NewValue, nil
}

// History returns the edit trail for one record
func (u *FieldEditUsecase) History(ctx context.Context, tableName, recordID string) ([]*entities.FieldEditEntry, error) {
	return u.fieldEdits.ListByRecord(ctx, tableName, recordID)
}
