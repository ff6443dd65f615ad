package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gowaveline.backend/internal/domain/entities"
	domainerrors "gowaveline.backend/internal/domain/errors"
	"gowaveline.backend/internal/interfaces/http/middleware"
)

type merchantAccessStub struct {
	verifyFn func(ctx context.Context, input *entities.VerifyOTPInput) (*entities.MerchantAccessResponse, error)
}

func (s *merchantAccessStub) VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) (*entities.MerchantAccessResponse, error) {
	return s.verifyFn(ctx, input)
}

type merchantAppStub struct {
	saveFn   func(ctx context.Context, id uuid.UUID, formData map[string]interface{}) error
	submitFn func(ctx context.Context, id uuid.UUID) error
}

func (s *merchantAppStub) SaveProgress(ctx context.Context, id uuid.UUID, formData map[string]interface{}) error {
	return s.saveFn(ctx, id, formData)
}

func (s *merchantAppStub) Submit(ctx context.Context, id uuid.UUID) error {
	return s.submitFn(ctx, id)
}

func postJSON(t *testing.T, h gin.HandlerFunc, body interface{}, setup func(*gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	if setup != nil {
		setup(c)
	}
	h(c)
	return w
}

func TestMerchantHandler_VerifyOTP_Success(t *testing.T) {
	appID := uuid.New()
	h := NewMerchantHandler(&merchantAccessStub{
		verifyFn: func(_ context.Context, input *entities.VerifyOTPInput) (*entities.MerchantAccessResponse, error) {
			require.Equal(t, "482910", input.OTP)
			return &entities.MerchantAccessResponse{
				ApplicationID: appID,
				AccessToken:   "token",
				FormData:      map[string]interface{}{"businessName": "Acme"},
			}, nil
		},
	}, &merchantAppStub{})

	w := postJSON(t, h.VerifyOTP, gin.H{"applicationId": appID.String(), "otp": "482910"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["success"])
	require.Equal(t, "token", resp["accessToken"])
}

func TestMerchantHandler_VerifyOTP_GenericUnauthorized(t *testing.T) {
	h := NewMerchantHandler(&merchantAccessStub{
		verifyFn: func(context.Context, *entities.VerifyOTPInput) (*entities.MerchantAccessResponse, error) {
			return nil, domainerrors.ErrInvalidVerification
		},
	}, &merchantAppStub{})

	w := postJSON(t, h.VerifyOTP, gin.H{"applicationId": uuid.New().String(), "otp": "000000"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid verification code")
	// The response must not say whether the id or the code was wrong
	require.NotContains(t, w.Body.String(), "not found")
}

func TestMerchantHandler_VerifyOTP_MissingFields(t *testing.T) {
	h := NewMerchantHandler(&merchantAccessStub{}, &merchantAppStub{})

	w := postJSON(t, h.VerifyOTP, gin.H{"applicationId": uuid.New().String()}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMerchantHandler_SaveProgress(t *testing.T) {
	appID := uuid.New()
	var savedID uuid.UUID
	h := NewMerchantHandler(&merchantAccessStub{}, &merchantAppStub{
		saveFn: func(_ context.Context, id uuid.UUID, formData map[string]interface{}) error {
			savedID = id
			require.Equal(t, "Acme LLC", formData["businessName"])
			return nil
		},
	})

	w := postJSON(t, h.SaveProgress, gin.H{"businessName": "Acme LLC"}, func(c *gin.Context) {
		c.Set(middleware.ApplicationIDKey, appID)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, appID, savedID)
}

func TestMerchantHandler_SaveProgress_NoSession(t *testing.T) {
	h := NewMerchantHandler(&merchantAccessStub{}, &merchantAppStub{})

	w := postJSON(t, h.SaveProgress, gin.H{"x": "y"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMerchantHandler_Submit(t *testing.T) {
	appID := uuid.New()
	h := NewMerchantHandler(&merchantAccessStub{}, &merchantAppStub{
		submitFn: func(_ context.Context, id uuid.UUID) error {
			require.Equal(t, appID, id)
			return nil
		},
	})

	w := postJSON(t, h.Submit, gin.H{}, func(c *gin.Context) {
		c.Set(middleware.ApplicationIDKey, appID)
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "submitted")
}

func TestMerchantHandler_Submit_AlreadyClosed(t *testing.T) {
	h := NewMerchantHandler(&merchantAccessStub{}, &merchantAppStub{
		submitFn: func(context.Context, uuid.UUID) error {
			return domainerrors.ErrInvalidTransition
		},
	})

	w := postJSON(t, h.Submit, gin.H{}, func(c *gin.Context) {
		c.Set(middleware.ApplicationIDKey, uuid.New())
	})
	require.Equal(t, http.StatusConflict, w.Code)
}
