package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
)

type complaintRepository interface {
	List(ctx context.Context) ([]models.Complaint, error)
	FindByID(ctx context.Context, id int64) (*models.Complaint, error)
	Create(ctx context.Context, complaint *models.Complaint) error
	UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error
}

// CreateComplaintRequest is the public intake payload. It is the only
// unauthenticated write in the system.
type CreateComplaintRequest struct {
	CitizenName string `json:"citizen_name" validate:"required"`
	OfficerName string `json:"officer_name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ComplaintService handles citizen complaint intake and review.
type ComplaintService struct {
	repo      complaintRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(repo complaintRepository, validate *validator.Validate, logger *zap.Logger) *ComplaintService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplaintService{repo: repo, validator: validate, logger: logger}
}

// List returns complaints for authenticated staff review.
func (s *ComplaintService) List(ctx context.Context) ([]models.Complaint, error) {
	complaints, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list complaints")
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	return complaints, nil
}

// Create records a new complaint from the public intake page.
func (s *ComplaintService) Create(ctx context.Context, req CreateComplaintRequest) (*models.Complaint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	complaint := &models.Complaint{
		CitizenName: req.CitizenName,
		OfficerName: req.OfficerName,
		Description: req.Description,
		Status:      models.ComplaintPending,
	}
	if err := s.repo.Create(ctx, complaint); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create complaint")
	}

	s.logger.Info("complaint received", zap.Int64("complaint_id", complaint.ID))
	return complaint, nil
}

// Resolve marks a complaint as handled.
func (s *ComplaintService) Resolve(ctx context.Context, id int64) (*models.Complaint, error) {
	complaint, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load complaint")
	}

	if err := s.repo.UpdateStatus(ctx, id, models.ComplaintResolved); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update complaint")
	}

	complaint.Status = models.ComplaintResolved
	return complaint, nil
}
