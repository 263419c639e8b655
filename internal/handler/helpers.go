package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spvm/records-api/internal/middleware"
	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
)

// pathID parses the :id route parameter as a positive integer.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid id")
	}
	return id, nil
}

// sessionClaims returns the claims set by the JWT middleware.
func sessionClaims(c *gin.Context) (*models.JWTClaims, error) {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return nil, appErrors.ErrTokenMissing
	}
	return claims, nil
}
