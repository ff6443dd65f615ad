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
	"gowaveline.backend/pkg/utils"
)

// ApplicationService is the contract the application handler depends on
type ApplicationService interface {
	Create(ctx context.Context, input *entities.CreateApplicationInput) (*entities.MerchantApplication, error)
	ResendOTP(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entities.MerchantApplication, error)
	List(ctx context.Context, status entities.ApplicationStatus, limit, offset int) ([]*entities.MerchantApplication, int64, error)
}

// ActionService is the contract for admin dispositions
type ActionService interface {
	Apply(ctx context.Context, id uuid.UUID, actionedBy string, input *entities.ApplyActionInput) (*entities.MerchantApplication, error)
	History(ctx context.Context, id uuid.UUID) ([]*entities.ActionLogEntry, error)
}

// ApplicationHandler handles admin-facing application endpoints
type ApplicationHandler struct {
	appUsecase    ApplicationService
	actionUsecase ActionService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appUsecase ApplicationService, actionUsecase ActionService) *ApplicationHandler {
	return &ApplicationHandler{
		appUsecase:    appUsecase,
		actionUsecase: actionUsecase,
	}
}

// Create initiates an application and emails the merchant their access code
// POST /api/v1/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var input entities.CreateApplicationInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	app, err := h.appUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success":     true,
		"application": app,
	})
}

// Get returns one application
// GET /api/v1/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	app, err := h.appUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Application not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, app)
}

// List returns a page of applications
// GET /api/v1/applications?status=&page=&limit=
func (h *ApplicationHandler) List(c *gin.Context) {
	var query utils.PaginationParams
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params := utils.GetPaginationParams(query.Page, query.Limit)

	status := entities.ApplicationStatus(c.Query("status"))

	apps, total, err := h.appUsecase.List(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"applications": apps,
		"pagination":   utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// ResendOTP re-delivers the merchant's access code
// POST /api/v1/applications/:id/resend-otp
func (h *ApplicationHandler) ResendOTP(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	if err := h.appUsecase.ResendOTP(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Application not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Access code sent",
	})
}

// ApplyAction declines or removes an application
// POST /api/v1/applications/:id/action
func (h *ApplicationHandler) ApplyAction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	var input entities.ApplyActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	actionedBy, _ := middleware.GetUserEmail(c)

	app, err := h.actionUsecase.Apply(c.Request.Context(), id, actionedBy, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Application not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":     true,
		"application": app,
	})
}

// ActionHistory returns the disposition audit trail
// GET /api/v1/applications/:id/actions
func (h *ApplicationHandler) ActionHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	entries, err := h.actionUsecase.History(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"actions": entries,
	})
}
