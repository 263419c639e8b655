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

type officerService interface {
	List(ctx context.Context) ([]models.OfficerWithRank, error)
	Create(ctx context.Context, req service.CreateOfficerRequest) (*models.Officer, error)
	Update(ctx context.Context, id int64, req service.UpdateOfficerRequest) (*models.Officer, error)
	Delete(ctx context.Context, id, actorID int64) error
	SetDutyStatus(ctx context.Context, officerID int64, req service.SetDutyStatusRequest) error
}

// OfficerHandler handles roster management endpoints.
type OfficerHandler struct {
	service officerService
}

// NewOfficerHandler creates a new officer handler.
func NewOfficerHandler(svc officerService) *OfficerHandler {
	return &OfficerHandler{service: svc}
}

// List godoc
// @Summary List officers
// @Description List the roster with rank names resolved
// @Tags Members
// @Produce json
// @Success 200 {array} models.OfficerWithRank
// @Router /api/members [get]
func (h *OfficerHandler) List(c *gin.Context) {
	officers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, officers)
}

// Create godoc
// @Summary Create officer
// @Description Enroll a new officer (admin only)
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body service.CreateOfficerRequest true "Officer payload"
// @Success 201 {object} models.Officer
// @Failure 400 {object} map[string]string
// @Router /api/members [post]
func (h *OfficerHandler) Create(c *gin.Context) {
	var req service.CreateOfficerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid officer payload"))
		return
	}

	officer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, officer)
}

// Update godoc
// @Summary Update officer
// @Description Update profile fields of an officer (admin only)
// @Tags Members
// @Accept json
// @Produce json
// @Param id path int true "Officer ID"
// @Param payload body service.UpdateOfficerRequest true "Officer payload"
// @Success 200 {object} models.Officer
// @Router /api/members/{id} [put]
func (h *OfficerHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.UpdateOfficerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid officer payload"))
		return
	}

	officer, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, officer)
}

// Delete godoc
// @Summary Delete officer
// @Description Remove an officer from the roster; self-deletion is refused
// @Tags Members
// @Produce json
// @Param id path int true "Officer ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/members/{id} [delete]
func (h *OfficerHandler) Delete(c *gin.Context) {
	claims, err := sessionClaims(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, claims.OfficerID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetDutyStatus godoc
// @Summary Update duty status
// @Description Update the caller's own duty status
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body service.SetDutyStatusRequest true "Duty status payload"
// @Success 200 {object} map[string]bool
// @Router /api/users/duty_status [put]
func (h *OfficerHandler) SetDutyStatus(c *gin.Context) {
	claims, err := sessionClaims(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.SetDutyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid duty status payload"))
		return
	}

	if err := h.service.SetDutyStatus(c.Request.Context(), claims.OfficerID, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
