package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
)

func submittedApp() *entities.MerchantApplication {
	return &entities.MerchantApplication{
		ID:            uuid.New(),
		MerchantName:  "Acme Coffee",
		MerchantEmail: "owner@acme.test",
		OTP:           "482910",
		Status:        entities.ApplicationStatusSubmitted,
	}
}

func TestActionUsecase_Apply_Decline(t *testing.T) {
	app := submittedApp()
	repo := newStubApplicationRepo(app)
	rec := &stubRecorder{}
	uc := NewActionUsecase(repo, &stubActionLogRepo{}, rec)

	got, err := uc.Apply(context.Background(), app.ID, "admin@gowaveline.test", &entities.ApplyActionInput{
		Action: entities.ApplicationActionDecline,
		Reason: entities.ReasonFraudRisk,
	})
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationStatusDeclined, got.Status)
	require.Equal(t, "Fraud risk", repo.appliedReason)
	require.Equal(t, "admin@gowaveline.test", repo.appliedBy)

	require.Len(t, rec.actions, 1)
	require.Equal(t, app.ID, rec.actions[0].ApplicationID)
	require.Equal(t, entities.ApplicationActionDecline, rec.actions[0].Action)
}

func TestActionUsecase_Apply_OtherReasonRequiresText(t *testing.T) {
	app := submittedApp()
	uc := NewActionUsecase(newStubApplicationRepo(app), &stubActionLogRepo{}, &stubRecorder{})

	_, err := uc.Apply(context.Background(), app.ID, "admin", &entities.ApplyActionInput{
		Action: entities.ApplicationActionRemove,
		Reason: entities.ReasonOther,
	})
	require.ErrorIs(t, err, domainerrors.ErrReasonRequired)

	got, err := uc.Apply(context.Background(), app.ID, "admin", &entities.ApplyActionInput{
		Action:     entities.ApplicationActionRemove,
		Reason:     entities.ReasonOther,
		CustomText: "Merchant asked to withdraw",
	})
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationStatusRemoved, got.Status)
}

func TestActionUsecase_Apply_RejectsUnknownAndSubmitActions(t *testing.T) {
	app := submittedApp()
	uc := NewActionUsecase(newStubApplicationRepo(app), &stubActionLogRepo{}, &stubRecorder{})

	_, err := uc.Apply(context.Background(), app.ID, "admin", &entities.ApplyActionInput{
		Action: entities.ApplicationAction("archive"),
		Reason: entities.ReasonFraudRisk,
	})
	require.Error(t, err)

	// Submit is a merchant operation, not an admin disposition
	_, err = uc.Apply(context.Background(), app.ID, "admin", &entities.ApplyActionInput{
		Action: entities.ApplicationActionSubmit,
		Reason: entities.ReasonFraudRisk,
	})
	require.Error(t, err)
}

func TestActionUsecase_Apply_LaterActionOverwritesEarlier(t *testing.T) {
	app := submittedApp()
	repo := newStubApplicationRepo(app)
	rec := &stubRecorder{}
	uc := NewActionUsecase(repo, &stubActionLogRepo{}, rec)

	_, err := uc.Apply(context.Background(), app.ID, "admin-a@gowaveline.test", &entities.ApplyActionInput{
		Action: entities.ApplicationActionDecline,
		Reason: entities.ReasonFraudRisk,
	})
	require.NoError(t, err)

	// A second admin acting on the same application wins; both actions
	// stay in the audit trail.
	got, err := uc.Apply(context.Background(), app.ID, "admin-b@gowaveline.test", &entities.ApplyActionInput{
		Action: entities.ApplicationActionRemove,
		Reason: entities.ReasonRequestedByMerchant,
	})
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationStatusRemoved, got.Status)
	require.Equal(t, "admin-b@gowaveline.test", repo.appliedBy)

	require.Len(t, rec.actions, 2)
	require.Equal(t, entities.ApplicationActionDecline, rec.actions[0].Action)
	require.Equal(t, entities.ApplicationActionRemove, rec.actions[1].Action)
}

func TestActionUsecase_Apply_AuditFailureIsNonFatal(t *testing.T) {
	app := submittedApp()
	repo := newStubApplicationRepo(app)
	rec := &stubRecorder{actionErr: errors.New("audit table down")}
	uc := NewActionUsecase(repo, &stubActionLogRepo{}, rec)

	got, err := uc.Apply(context.Background(), app.ID, "admin", &entities.ApplyActionInput{
		Action: entities.ApplicationActionDecline,
		Reason: entities.ReasonDuplicateSubmission,
	})
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationStatusDeclined, got.Status)
}

func TestActionUsecase_Apply_PrimaryWriteFailureIsFatal(t *testing.T) {
	app := submittedApp()
	repo := newStubApplicationRepo(app)
	repo.actionErr = errors.New("db down")
	rec := &stubRecorder{}
	uc := NewActionUsecase(repo, &stubActionLogRepo{}, rec)

	_, err := uc.Apply(context.Background(), app.ID, "admin", &entities.ApplyActionInput{
		Action: entities.ApplicationActionDecline,
		Reason: entities.ReasonFraudRisk,
	})
	require.Error(t, err)
	require.Empty(t, rec.actions, "no audit entry when the primary write fails")
}

func TestActionUsecase_History(t *testing.T) {
	logRepo := &stubActionLogRepo{entries: []*entities.ActionLogEntry{
		{Action: entities.ApplicationActionDecline, Reason: "Fraud risk"},
	}}
	uc := NewActionUsecase(newStubApplicationRepo(), logRepo, &stubRecorder{})

	entries, err := uc.History(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
