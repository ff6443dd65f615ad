package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "gowaveline.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"error":   appErr.Message,
		"details": appErr.Error(),
	})
}

// ErrorWithStatus sends an error response with a specific status and detail
func ErrorWithStatus(c *gin.Context, status int, message, details string) {
	c.JSON(status, gin.H{
		"error":   message,
		"details": details,
	})
}

// Unauthorized sends a 401 with the given message
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}
