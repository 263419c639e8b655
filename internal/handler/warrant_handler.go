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

type warrantService interface {
	List(ctx context.Context) ([]models.WarrantWithOfficer, error)
	Create(ctx context.Context, officerID int64, req service.CreateWarrantRequest) (*models.Warrant, error)
	Transition(ctx context.Context, id int64, actor *models.JWTClaims, req service.TransitionWarrantRequest) (*models.Warrant, error)
}

// WarrantHandler handles warrant workflow endpoints.
type WarrantHandler struct {
	service warrantService
}

// NewWarrantHandler creates a new warrant handler.
func NewWarrantHandler(svc warrantService) *WarrantHandler {
	return &WarrantHandler{service: svc}
}

// List godoc
// @Summary List warrants
// @Description List warrants with requesting officer details
// @Tags Warrants
// @Produce json
// @Success 200 {array} models.WarrantWithOfficer
// @Router /api/warrants [get]
func (h *WarrantHandler) List(c *gin.Context) {
	warrants, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, warrants)
}

// Create godoc
// @Summary Request warrant
// @Description File a warrant request; it starts in pending status
// @Tags Warrants
// @Accept json
// @Produce json
// @Param payload body service.CreateWarrantRequest true "Warrant payload"
// @Success 201 {object} models.Warrant
// @Router /api/warrants [post]
func (h *WarrantHandler) Create(c *gin.Context) {
	claims, err := sessionClaims(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.CreateWarrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid warrant payload"))
		return
	}

	warrant, err := h.service.Create(c.Request.Context(), claims.OfficerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, warrant)
}

// Transition godoc
// @Summary Change warrant status
// @Description Approve or deny a pending warrant (admin) or execute an approved one (any officer)
// @Tags Warrants
// @Accept json
// @Produce json
// @Param id path int true "Warrant ID"
// @Param payload body service.TransitionWarrantRequest true "Target status"
// @Success 200 {object} models.Warrant
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/warrants/{id} [put]
func (h *WarrantHandler) Transition(c *gin.Context) {
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

	var req service.TransitionWarrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid warrant payload"))
		return
	}

	warrant, err := h.service.Transition(c.Request.Context(), id, claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, warrant)
}
