package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
	"github.com/spvm/records-api/pkg/export"
)

type arrestRepository interface {
	List(ctx context.Context) ([]models.ArrestReportWithOfficer, error)
	Create(ctx context.Context, report *models.ArrestReport) error
}

type fineRepository interface {
	List(ctx context.Context) ([]models.FineReportWithOfficer, error)
	Create(ctx context.Context, fine *models.FineReport) error
}

// CreateArrestRequest captures an arrest report filing.
type CreateArrestRequest struct {
	SuspectName string `json:"suspect_name" validate:"required"`
	Charges     string `json:"charges" validate:"required"`
	Details     string `json:"details" validate:"required"`
}

// CreateFineRequest captures a fine report filing. Amounts must be positive.
type CreateFineRequest struct {
	CitizenName string `json:"citizen_name" validate:"required"`
	Amount      *int64 `json:"amount" validate:"required,gt=0"`
	Reason      string `json:"reason" validate:"required"`
}

// ExportFormat selects the rendering for report downloads.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportResult is a rendered report download.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportService handles arrest and fine report filings. Reports are
// immutable once created; there is no update or delete path.
type ReportService struct {
	arrests   arrestRepository
	fines     fineRepository
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReportService creates a new report service.
func NewReportService(arrests arrestRepository, fines fineRepository, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		arrests:   arrests,
		fines:     fines,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: validate,
		logger:    logger,
	}
}

// ListArrests returns arrest reports with officer details resolved.
func (s *ReportService) ListArrests(ctx context.Context) ([]models.ArrestReportWithOfficer, error) {
	reports, err := s.arrests.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list arrest reports")
	}
	if reports == nil {
		reports = []models.ArrestReportWithOfficer{}
	}
	return reports, nil
}

// CreateArrest files a new arrest report for the acting officer.
func (s *ReportService) CreateArrest(ctx context.Context, officerID int64, req CreateArrestRequest) (*models.ArrestReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	report := &models.ArrestReport{
		SuspectName: req.SuspectName,
		OfficerID:   officerID,
		Charges:     req.Charges,
		Details:     req.Details,
	}
	if err := s.arrests.Create(ctx, report); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create arrest report")
	}
	return report, nil
}

// ListFines returns fine reports with officer details resolved.
func (s *ReportService) ListFines(ctx context.Context) ([]models.FineReportWithOfficer, error) {
	fines, err := s.fines.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fine reports")
	}
	if fines == nil {
		fines = []models.FineReportWithOfficer{}
	}
	return fines, nil
}

// CreateFine files a new fine report for the acting officer.
func (s *ReportService) CreateFine(ctx context.Context, officerID int64, req CreateFineRequest) (*models.FineReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required and amount must be positive")
	}

	fine := &models.FineReport{
		CitizenName: req.CitizenName,
		OfficerID:   officerID,
		Amount:      *req.Amount,
		Reason:      req.Reason,
	}
	if err := s.fines.Create(ctx, fine); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create fine report")
	}
	return fine, nil
}

// ExportArrests renders the arrest register as a CSV or PDF download.
func (s *ReportService) ExportArrests(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	reports, err := s.ListArrests(ctx)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   "Arrest Register",
		Headers: []string{"ID", "Suspect", "Officer", "Badge", "Charges", "Date"},
	}
	for _, r := range reports {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.SuspectName,
			r.OfficerName,
			r.BadgeNumber,
			r.Charges,
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return s.render(table, format, "arrests")
}

// ExportFines renders the fine register as a CSV or PDF download.
func (s *ReportService) ExportFines(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	fines, err := s.ListFines(ctx)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   "Fine Register",
		Headers: []string{"ID", "Citizen", "Officer", "Badge", "Amount", "Reason", "Date"},
	}
	for _, f := range fines {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", f.ID),
			f.CitizenName,
			f.OfficerName,
			f.BadgeNumber,
			fmt.Sprintf("%d", f.Amount),
			f.Reason,
			f.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return s.render(table, format, "fines")
}

func (s *ReportService) render(table export.Table, format ExportFormat, name string) (*ExportResult, error) {
	switch format {
	case ExportCSV, "":
		content, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: name + ".csv"}, nil
	case ExportPDF:
		content, err := s.pdf.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: name + ".pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
