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

type complaintService interface {
	List(ctx context.Context) ([]models.Complaint, error)
	Create(ctx context.Context, req service.CreateComplaintRequest) (*models.Complaint, error)
	Resolve(ctx context.Context, id int64) (*models.Complaint, error)
}

// ComplaintHandler handles citizen complaint endpoints. Submission is
// public; review and resolution require authentication.
type ComplaintHandler struct {
	service complaintService
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(svc complaintService) *ComplaintHandler {
	return &ComplaintHandler{service: svc}
}

// List godoc
// @Summary List complaints
// @Tags Complaints
// @Produce json
// @Success 200 {array} models.Complaint
// @Router /api/complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	complaints, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, complaints)
}

// Create godoc
// @Summary Submit complaint
// @Description Submit a citizen complaint; no authentication required
// @Tags Complaints
// @Accept json
// @Produce json
// @Param payload body service.CreateComplaintRequest true "Complaint payload"
// @Success 201 {object} models.Complaint
// @Router /api/complaints [post]
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req service.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid complaint payload"))
		return
	}

	complaint, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, complaint)
}

// Resolve godoc
// @Summary Resolve complaint
// @Description Mark a complaint as resolved (admin only)
// @Tags Complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} models.Complaint
// @Router /api/complaints/{id} [put]
func (h *ComplaintHandler) Resolve(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	complaint, err := h.service.Resolve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, complaint)
}
