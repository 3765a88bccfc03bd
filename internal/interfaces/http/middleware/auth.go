package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"customer-hub.backend/pkg/jwt"
	"customer-hub.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// CustomerIDKey is the context key for the authenticated customer ID
	CustomerIDKey = "customerId"
	// CustomerEmailKey is the context key for the authenticated customer email
	CustomerEmailKey = "customerEmail"
)

// LogoutChecker reports whether a customer has a live logout marker
type LogoutChecker interface {
	IsLoggedOut(ctx context.Context, customerID string) (bool, error)
}

// AuthMiddleware creates a new authentication middleware
func AuthMiddleware(jwtService *jwt.JWTService, sessions LogoutChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid token",
			})
			return
		}

		if sessions != nil {
			loggedOut, err := sessions.IsLoggedOut(c.Request.Context(), claims.CustomerID.String())
			if err != nil {
				// marker store unavailable: token validity alone decides
				logger.Warn(c.Request.Context(), "logout marker check failed", zap.Error(err))
			} else if loggedOut {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": "Customer logged out",
				})
				return
			}
		}

		c.Set(CustomerIDKey, claims.CustomerID)
		c.Set(CustomerEmailKey, claims.Email)

		c.Next()
	}
}

// GetCustomerID gets the authenticated customer ID from context
func GetCustomerID(c *gin.Context) (uuid.UUID, bool) {
	customerID, exists := c.Get(CustomerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := customerID.(uuid.UUID)
	return id, ok
}

// GetCustomerEmail gets the authenticated customer email from context
func GetCustomerEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(CustomerEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
