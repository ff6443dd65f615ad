package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gowaveline.backend/internal/audit"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/domain/repositories"
	"gowaveline.backend/internal/infrastructure/email"
	"gowaveline.backend/pkg/crypto"
	"gowaveline.backend/pkg/logger"
)

// ApplicationUsecase handles merchant application intake business logic
type ApplicationUsecase struct {
	appRepo  repositories.ApplicationRepository
	sender   email.Sender
	recorder audit.Recorder
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo repositories.ApplicationRepository, sender email.Sender, recorder audit.Recorder) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:  appRepo,
		sender:   sender,
		recorder: recorder,
	}
}

// Create initiates an application for a merchant and emails them their
// access code. A failed email send does not roll back the application;
// the admin can resend from the record.
func (u *ApplicationUsecase) Create(ctx context.Context, input *entities.CreateApplicationInput) (*entities.MerchantApplication, error) {
	otp, err := crypto.GenerateOTP()
	if err != nil {
		return nil, err
	}

	app := &entities.MerchantApplication{
		MerchantName:  input.MerchantName,
		MerchantEmail: input.MerchantEmail,
		OTP:           otp,
		Status:        entities.ApplicationStatusIncomplete,
	}

	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	u.sendOTP(ctx, app)

	return app, nil
}

// ResendOTP re-delivers the stored access code for an existing application
func (u *ApplicationUsecase) ResendOTP(ctx context.Context, id uuid.UUID) error {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if app.Status.IsTerminal() {
		return domainerrors.ErrInvalidTransition
	}

	subject, body := email.OTPBody(app.MerchantName, app.ID.String(), app.OTP)
	if err := u.sender.Send(app.MerchantEmail, subject, body); err != nil {
		return domainerrors.NewError("failed to send access code email", err)
	}
	return nil
}

// Get returns a single application
func (u *ApplicationUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.MerchantApplication, error) {
	return u.appRepo.GetByID(ctx, id)
}

// List returns a page of applications, optionally filtered by status
func (u *ApplicationUsecase) List(ctx context.Context, status entities.ApplicationStatus, limit, offset int) ([]*entities.MerchantApplication, int64, error) {
	return u.appRepo.List(ctx, status, limit, offset)
}

// SaveProgress replaces the application's form data blob. Writes follow
// last-write-wins; concurrent saves are not version-checked.
func (u *ApplicationUsecase) SaveProgress(ctx context.Context, id uuid.UUID, formData map[string]interface{}) error {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if app.Status.IsTerminal() {
		return domainerrors.ErrInvalidTransition
	}

	data, err := json.Marshal(formData)
	if err != nil {
		return domainerrors.ErrInvalidInput
	}

	return u.appRepo.UpdateFormData(ctx, id, data)
}

// Submit finalizes an incomplete application. The submit transition is
// logged like any other, best-effort.
func (u *ApplicationUsecase) Submit(ctx context.Context, id uuid.UUID) error {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !app.Status.CanTransitionTo(entities.ApplicationStatusSubmitted) {
		return domainerrors.ErrInvalidTransition
	}

	if err := u.appRepo.ApplyAction(ctx, id, entities.ApplicationStatusSubmitted, "", "merchant"); err != nil {
		return err
	}

	if err := u.recorder.RecordAction(ctx, &entities.ActionLogEntry{
		ApplicationID: id,
		Action:        entities.ApplicationActionSubmit,
		ActionedBy:    "merchant",
	}); err != nil {
		logger.Warn(ctx, "submit audit write failed",
			zap.String("application_id", id.String()),
			zap.Error(err))
	}

	return nil
}

func (u *ApplicationUsecase) sendOTP(ctx context.Context, app *entities.MerchantApplication) {
	subject, body := email.OTPBody(app.MerchantName, app.ID.String(), app.OTP)
	if err := u.sender.Send(app.MerchantEmail, subject, body); err != nil {
		logger.Warn(ctx, "failed to send access code email",
			zap.String("application_id", app.ID.String()),
			zap.Error(err))
	}
}
