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

type rankService interface {
	List(ctx context.Context) ([]models.Rank, error)
	Create(ctx context.Context, req service.RankRequest) (*models.Rank, error)
	Update(ctx context.Context, id int64, req service.RankRequest) (*models.Rank, error)
	Delete(ctx context.Context, id int64) error
}

// RankHandler handles rank catalog endpoints.
type RankHandler struct {
	service rankService
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(svc rankService) *RankHandler {
	return &RankHandler{service: svc}
}

// List godoc
// @Summary List ranks
// @Tags Ranks
// @Produce json
// @Success 200 {array} models.Rank
// @Router /api/ranks [get]
func (h *RankHandler) List(c *gin.Context) {
	ranks, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ranks)
}

// Create godoc
// @Summary Create rank
// @Tags Ranks
// @Accept json
// @Produce json
// @Param payload body service.RankRequest true "Rank payload"
// @Success 201 {object} models.Rank
// @Router /api/ranks [post]
func (h *RankHandler) Create(c *gin.Context) {
	var req service.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid rank payload"))
		return
	}

	rank, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, rank)
}

// Update godoc
// @Summary Update rank
// @Tags Ranks
// @Accept json
// @Produce json
// @Param id path int true "Rank ID"
// @Param payload body service.RankRequest true "Rank payload"
// @Success 200 {object} models.Rank
// @Router /api/ranks/{id} [put]
func (h *RankHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid rank payload"))
		return
	}

	rank, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rank)
}

// Delete godoc
// @Summary Delete rank
// @Description Delete a rank; refused while officers still hold it
// @Tags Ranks
// @Produce json
// @Param id path int true "Rank ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /api/ranks/{id} [delete]
func (h *RankHandler) Delete(c *gin.Context) {
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
