package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/interfaces/http/middleware"
	"gowaveline.backend/internal/interfaces/http/response"
)

// MerchantAccessService is the contract for the OTP login flow
type MerchantAccessService interface {
	VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) (*entities.MerchantAccessResponse, error)
}

// MerchantApplicationService is the contract for merchant form operations
type MerchantApplicationService interface {
	SaveProgress(ctx context.Context, id uuid.UUID, formData map[string]interface{}) error
	Submit(ctx context.Context, id uuid.UUID) error
}

// MerchantHandler handles the merchant-facing application portal
type MerchantHandler struct {
	accessUsecase MerchantAccessService
	appUsecase    MerchantApplicationService
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(accessUsecase MerchantAccessService, appUsecase MerchantApplicationService) *MerchantHandler {
	return &MerchantHandler{
		accessUsecase: accessUsecase,
		appUsecase:    appUsecase,
	}
}

// VerifyOTP exchanges an application id and access code for a session.
// The error message never reveals whether the id or the code was wrong.
// POST /api/v1/merchant/verify-otp
func (h *MerchantHandler) VerifyOTP(c *gin.Context) {
	var input entities.VerifyOTPInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	access, err := h.accessUsecase.VerifyOTP(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidVerification) {
			response.Unauthorized(c, "Invalid verification code")
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":       true,
		"applicationId": access.ApplicationID,
		"accessToken":   access.AccessToken,
		"formData":      access.FormData,
	})
}

// SaveProgress stores the merchant's partially filled form
// PUT /api/v1/merchant/applications/:id/form
func (h *MerchantHandler) SaveProgress(c *gin.Context) {
	appID, ok := middleware.GetApplicationID(c)
	if !ok {
		response.Unauthorized(c, "Merchant session required")
		return
	}

	var formData map[string]interface{}
	if err := c.ShouldBindJSON(&formData); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.appUsecase.SaveProgress(c.Request.Context(), appID, formData); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidTransition) {
			response.Error(c, domainerrors.Conflict("Application can no longer be edited"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
	})
}

// Submit finalizes the merchant's application
// POST /api/v1/merchant/applications/:id/submit
func (h *MerchantHandler) Submit(c *gin.Context) {
	appID, ok := middleware.GetApplicationID(c)
	if !ok {
		response.Unauthorized(c, "Merchant session required")
		return
	}

	if err := h.appUsecase.Submit(c.Request.Context(), appID); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidTransition) {
			response.Error(c, domainerrors.Conflict("Application has already been submitted or closed"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"status":  entities.ApplicationStatusSubmitted,
	})
}
