package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
	"github.com/spvm/records-api/pkg/response"
)

// RequireAdmin rejects callers without the admin role. The role model is
// binary: routes are either open to any authenticated officer or admin-only.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			response.Error(c, appErrors.ErrTokenMissing)
			c.Abort()
			return
		}

		if claims.Role != models.RoleAdmin {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentClaims returns the session claims stored by the JWT middleware.
func CurrentClaims(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
