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

type sanctionRepository interface {
	List(ctx context.Context) ([]models.SanctionWithOfficers, error)
	Create(ctx context.Context, sanction *models.Sanction) error
}

type officerLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Officer, error)
}

// CreateSanctionRequest captures a disciplinary sanction filing.
type CreateSanctionRequest struct {
	OfficerID int64  `json:"officer_id" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required"`
}

// SanctionService handles disciplinary sanction workflows. Sanctions are
// immutable audit-style records; only create and list exist.
type SanctionService struct {
	repo      sanctionRepository
	officers  officerLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSanctionService creates a new sanction service.
func NewSanctionService(repo sanctionRepository, officers officerLookup, validate *validator.Validate, logger *zap.Logger) *SanctionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SanctionService{repo: repo, officers: officers, validator: validate, logger: logger}
}

// List returns sanctions with both officers resolved.
func (s *SanctionService) List(ctx context.Context) ([]models.SanctionWithOfficers, error) {
	sanctions, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sanctions")
	}
	if sanctions == nil {
		sanctions = []models.SanctionWithOfficers{}
	}
	return sanctions, nil
}

// Create files a sanction against an officer. The issuer comes from the
// session claims and must hold the admin role, enforced at the router.
func (s *SanctionService) Create(ctx context.Context, issuerID int64, req CreateSanctionRequest) (*models.Sanction, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	if _, err := s.officers.FindByID(ctx, req.OfficerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "sanctioned officer does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check officer")
	}

	sanction := &models.Sanction{
		OfficerID: req.OfficerID,
		IssuedBy:  issuerID,
		Reason:    req.Reason,
	}
	if err := s.repo.Create(ctx, sanction); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create sanction")
	}

	s.logger.Info("sanction issued", zap.Int64("sanction_id", sanction.ID), zap.Int64("officer_id", sanction.OfficerID), zap.Int64("issued_by", issuerID))
	return sanction, nil
}
