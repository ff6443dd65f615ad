package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"gowaveline.backend/pkg/utils"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware tags each request with an id, honoring an incoming
// X-Request-ID header so ids propagate across services.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.GenerateUUIDv7().String()
		}

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		// String key matches what pkg/logger.WithContext looks up.
		ctx := context.WithValue(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
