package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spvm/records-api/internal/models"
	"github.com/spvm/records-api/internal/service"
	appErrors "github.com/spvm/records-api/pkg/errors"
	"github.com/spvm/records-api/pkg/response"
)

type reportService interface {
	ListArrests(ctx context.Context) ([]models.ArrestReportWithOfficer, error)
	CreateArrest(ctx context.Context, officerID int64, req service.CreateArrestRequest) (*models.ArrestReport, error)
	ListFines(ctx context.Context) ([]models.FineReportWithOfficer, error)
	CreateFine(ctx context.Context, officerID int64, req service.CreateFineRequest) (*models.FineReport, error)
	ExportArrests(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
	ExportFines(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
}

// ReportHandler handles arrest and fine report endpoints.
type ReportHandler struct {
	service reportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// ListArrests godoc
// @Summary List arrest reports
// @Description List arrest reports, newest first, with filing officer details
// @Tags Reports
// @Produce json
// @Success 200 {array} models.ArrestReportWithOfficer
// @Router /api/arrests [get]
func (h *ReportHandler) ListArrests(c *gin.Context) {
	reports, err := h.service.ListArrests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reports)
}

// CreateArrest godoc
// @Summary File arrest report
// @Description File an arrest report attributed to the authenticated officer
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body service.CreateArrestRequest true "Arrest report payload"
// @Success 201 {object} models.ArrestReport
// @Router /api/arrests [post]
func (h *ReportHandler) CreateArrest(c *gin.Context) {
	claims, err := sessionClaims(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.CreateArrestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid arrest report payload"))
		return
	}

	report, err := h.service.CreateArrest(c.Request.Context(), claims.OfficerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, report)
}

// ListFines godoc
// @Summary List fine reports
// @Tags Reports
// @Produce json
// @Success 200 {array} models.FineReportWithOfficer
// @Router /api/fines [get]
func (h *ReportHandler) ListFines(c *gin.Context) {
	fines, err := h.service.ListFines(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fines)
}

// CreateFine godoc
// @Summary File fine report
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body service.CreateFineRequest true "Fine report payload"
// @Success 201 {object} models.FineReport
// @Router /api/fines [post]
func (h *ReportHandler) CreateFine(c *gin.Context) {
	claims, err := sessionClaims(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.CreateFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid fine report payload"))
		return
	}

	fine, err := h.service.CreateFine(c.Request.Context(), claims.OfficerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fine)
}

// ExportArrests godoc
// @Summary Export arrest reports
// @Description Download arrest reports as CSV or PDF
// @Tags Reports
// @Produce octet-stream
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} binary
// @Router /api/arrests/export [get]
func (h *ReportHandler) ExportArrests(c *gin.Context) {
	result, err := h.service.ExportArrests(c.Request.Context(), service.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExport(c, result)
}

// ExportFines godoc
// @Summary Export fine reports
// @Description Download fine reports as CSV or PDF
// @Tags Reports
// @Produce octet-stream
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} binary
// @Router /api/fines/export [get]
func (h *ReportHandler) ExportFines(c *gin.Context) {
	result, err := h.service.ExportFines(c.Request.Context(), service.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExport(c, result)
}

func writeExport(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
