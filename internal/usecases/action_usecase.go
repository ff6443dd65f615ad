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

// ActionUsecase handles admin dispositions on applications
type ActionUsecase struct {
	appRepo    repositories.ApplicationRepository
	actionLogs repositories.ActionLogRepository
	recorder   audit.Recorder
}

// NewActionUsecase creates a new action usecase
func NewActionUsecase(appRepo repositories.ApplicationRepository, actionLogs repositories.ActionLogRepository, recorder audit.Recorder) *ActionUsecase {
	return &ActionUsecase{
		appRepo:    appRepo,
		actionLogs: actionLogs,
		recorder:   recorder,
	}
}

// Apply declines or removes an application. The status update is the
// authoritative write; the audit entry is best-effort and a failure there
// never fails the action.
func (u *ActionUsecase) Apply(ctx context.Context, id uuid.UUID, actionedBy string, input *entities.ApplyActionInput) (*entities.MerchantApplication, error) {
	target, ok := input.Action.TargetStatus()
	if !ok || input.Action == entities.ApplicationActionSubmit {
		return nil, domainerrors.BadRequest("unknown action")
	}

	reason, ok := entities.ResolveReason(input.Reason, input.CustomText)
	if !ok {
		return nil, domainerrors.NewAppError(400, "a reason is required for this action", domainerrors.ErrReasonRequired)
	}

	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !app.Status.CanTransitionTo(target) {
		return nil, domainerrors.NewAppError(409, "application is already "+string(app.Status), domainerrors.ErrInvalidTransition)
	}

	if err := u.appRepo.ApplyAction(ctx, id, target, reason, actionedBy); err != nil {
		return nil, err
	}

	if err := u.recorder.RecordAction(ctx, &entities.ActionLogEntry{
		ApplicationID: id,
		Action:        input.Action,
		Reason:        reason,
		ActionedBy:    actionedBy,
	}); err != nil {
		logger.Warn(ctx, "action audit write failed",
			zap.String("application_id", id.String()),
			zap.Error(err))
	}

	return u.appRepo.GetByID(ctx, id)
}

// History returns the disposition audit trail for one application
func (u *ActionUsecase) History(ctx context.Context, id uuid.UUID) ([]*entities.ActionLogEntry, error) {
	return u.actionLogs.ListByApplicationID(ctx, id)
}
