package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gowaveline.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
	// ApplicationIDKey is the context key for the merchant token's application scope
	ApplicationIDKey = "applicationId"
)

// AuthMiddleware creates a new authentication middleware
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := validateBearer(c, jwtService)
		if !ok {
			return
		}

		// Set user info in context
		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

// MerchantAuthMiddleware validates a merchant session token and pins the
// request to the application the token was issued for. The application id
// in the URL must match the token scope.
func MerchantAuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := validateBearer(c, jwtService)
		if !ok {
			return
		}

		if claims.Role != "merchant" || claims.ApplicationID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Merchant session required",
			})
			return
		}

		if pathID := c.Param("id"); pathID != "" && pathID != claims.ApplicationID.String() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Token is not valid for this application",
			})
			return
		}

		c.Set(UserRoleKey, claims.Role)
		c.Set(ApplicationIDKey, claims.ApplicationID)

		c.Next()
	}
}

func validateBearer(c *gin.Context, jwtService *jwt.JWTService) (*jwt.Claims, bool) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		log.Printf("[AuthMiddleware] Request to %s failed: Authorization header is missing", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Authorization header is required",
		})
		return nil, false
	}

	if !strings.HasPrefix(authHeader, BearerPrefix) {
		log.Printf("[AuthMiddleware] Request to %s failed: Invalid authorization format", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid authorization format. Use: Bearer <token>",
		})
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
	claims, err := jwtService.ValidateToken(tokenString)
	if err != nil {
		log.Printf("[AuthMiddleware] Request to %s failed: %v", c.Request.URL.Path, err)
		if err == jwt.ErrExpiredToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token has expired",
			})
			return nil, false
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid token",
		})
		return nil, false
	}

	return claims, true
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// GetApplicationID gets the merchant token's application scope from context
func GetApplicationID(c *gin.Context) (uuid.UUID, bool) {
	appID, exists := c.Get(ApplicationIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return appID.(uuid.UUID), true
}

// RequireRole creates a middleware that requires a specific role
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := GetUserRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User role not found",
			})
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

// RequireAdmin creates a middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("admin")
}
