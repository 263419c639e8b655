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

type penalCodeService interface {
	List(ctx context.Context) ([]models.PenalCodeArticle, error)
	Create(ctx context.Context, req service.PenalCodeRequest) (*models.PenalCodeArticle, error)
	Update(ctx context.Context, id int64, req service.PenalCodeRequest) (*models.PenalCodeArticle, error)
	Delete(ctx context.Context, id int64) error
}

// PenalCodeHandler handles penal code catalog endpoints.
type PenalCodeHandler struct {
	service penalCodeService
}

// NewPenalCodeHandler creates a new penal code handler.
func NewPenalCodeHandler(svc penalCodeService) *PenalCodeHandler {
	return &PenalCodeHandler{service: svc}
}

// List godoc
// @Summary List penal code articles
// @Tags PenalCode
// @Produce json
// @Success 200 {array} models.PenalCodeArticle
// @Router /api/penal_code [get]
func (h *PenalCodeHandler) List(c *gin.Context) {
	articles, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, articles)
}

// Create godoc
// @Summary Create penal code article
// @Tags PenalCode
// @Accept json
// @Produce json
// @Param payload body service.PenalCodeRequest true "Article payload"
// @Success 201 {object} models.PenalCodeArticle
// @Router /api/penal_code [post]
func (h *PenalCodeHandler) Create(c *gin.Context) {
	var req service.PenalCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid penal code payload"))
		return
	}

	article, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

// Update godoc
// @Summary Update penal code article
// @Tags PenalCode
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param payload body service.PenalCodeRequest true "Article payload"
// @Success 200 {object} models.PenalCodeArticle
// @Router /api/penal_code/{id} [put]
func (h *PenalCodeHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.PenalCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid penal code payload"))
		return
	}

	article, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article)
}

// Delete godoc
// @Summary Delete penal code article
// @Tags PenalCode
// @Produce json
// @Param id path int true "Article ID"
// @Success 204
// @Router /api/penal_code/{id} [delete]
func (h *PenalCodeHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
