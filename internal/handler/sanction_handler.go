package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spvm/records-api/internal/models"
	"github.com/spvm/records-api/internal/service"
	appErrors "github.com/spvm/records-api/pkg/errors"
	"github.com/spvm/records-api/pkg/response"
)

type sanctionService interface {
	List(ctx context.Context) ([]models.SanctionWithOfficers, error)
	Create(ctx context.Context, issuerID int64, req service.CreateSanctionRequest) (*models.Sanction, error)
}

// SanctionHandler handles disciplinary sanction endpoints.
type SanctionHandler struct {
	service sanctionService
}

// NewSanctionHandler creates a new sanction handler.
func NewSanctionHandler(svc sanctionService) *SanctionHandler {
	return &SanctionHandler{service: svc}
}

// List godoc
// @Summary List sanctions
// @Description List sanctions with target and issuing officer details
// @Tags Sanctions
// @Produce json
// @Success 200 {array} models.SanctionWithOfficers
// @Router /api/sanctions [get]
func (h *SanctionHandler) List(c *gin.Context) {
	sanctions, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sanctions)
}

// Create godoc
// @Summary Issue sanction
// @Description Issue a disciplinary sanction against an officer (admin only)
// @Tags Sanctions
// @Accept json
// @Produce json
// @Param payload body service.CreateSanctionRequest true "Sanction payload"
// @Success 201 {object} models.Sanction
// @Router /api/sanctions [post]
func (h *SanctionHandler) Create(c *gin.Context) {
	claims, err := sessionClaims(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.CreateSanctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid sanction payload"))
		return
	}

	sanction, err := h.service.Create(c.Request.Context(), claims.OfficerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sanction)
}
