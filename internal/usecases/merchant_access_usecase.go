package usecases

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/domain/repositories"
	"gowaveline.backend/pkg/jwt"
	"gowaveline.backend/pkg/logger"
)

// MerchantAccessUsecase handles the merchant-facing OTP login flow
type MerchantAccessUsecase struct {
	appRepo    repositories.ApplicationRepository
	jwtService *jwt.JWTService
}

// NewMerchantAccessUsecase creates a new merchant access usecase
func NewMerchantAccessUsecase(appRepo repositories.ApplicationRepository, jwtService *jwt.JWTService) *MerchantAccessUsecase {
	return &MerchantAccessUsecase{
		appRepo:    appRepo,
		jwtService: jwtService,
	}
}

// VerifyOTP checks an access code against the stored one and, on an exact
// match, returns the saved form data plus a session token scoped to this
// application. A wrong code and a lookup failure are indistinguishable to
// the caller.
func (u *MerchantAccessUsecase) VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) (*entities.MerchantAccessResponse, error) {
	appID, err := uuid.Parse(strings.TrimSpace(input.ApplicationID))
	if err != nil {
		return nil, domainerrors.ErrInvalidVerification
	}

	otp := strings.TrimSpace(input.OTP)
	if otp == "" {
		return nil, domainerrors.ErrInvalidVerification
	}

	app, err := u.appRepo.GetByIDAndOTP(ctx, appID, otp)
	if err != nil {
		logger.Warn(ctx, "otp verification failed",
			zap.String("application_id", appID.String()))
		return nil, domainerrors.ErrInvalidVerification
	}

	token, err := u.jwtService.GenerateMerchantToken(app.ID)
	if err != nil {
		return nil, err
	}

	return &entities.MerchantAccessResponse{
		ApplicationID: app.ID,
		AccessToken:   token,
		FormData:      mergeFormData(app),
	}, nil
}

// mergeFormData overlays saved progress on top of the identity fields the
// admin entered at creation, so a first login starts pre-filled.
func mergeFormData(app *entities.MerchantApplication) map[string]interface{} {
	merged := map[string]interface{}{
		"businessName": app.MerchantName,
		"email":        app.MerchantEmail,
	}

	if app.ApplicationData.Valid {
		var saved map[string]interface{}
		if err := json.Unmarshal(app.ApplicationData.JSON, &saved); err == nil {
			for k, v := range saved {
				merged[k] = v
			}
		}
	}

	return merged
}
