package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
)

type warrantRepository interface {
	List(ctx context.Context) ([]models.WarrantWithOfficer, error)
	FindByID(ctx context.Context, id int64) (*models.Warrant, error)
	Create(ctx context.Context, warrant *models.Warrant) error
	UpdateStatus(ctx context.Context, id int64, status models.WarrantStatus) error
}

// CreateWarrantRequest captures a warrant request filing.
type CreateWarrantRequest struct {
	SuspectName string `json:"suspect_name" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
}

// TransitionWarrantRequest carries the target status for a transition.
type TransitionWarrantRequest struct {
	Status string `json:"status" validate:"required,oneof=approved denied executed"`
}

// WarrantService owns the warrant approval workflow. Officers file requests,
// admins approve or deny pending ones, and any officer may execute an
// approved warrant.
type WarrantService struct {
	repo      warrantRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWarrantService creates a new warrant service.
func NewWarrantService(repo warrantRepository, validate *validator.Validate, logger *zap.Logger) *WarrantService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WarrantService{repo: repo, validator: validate, logger: logger}
}

// List returns warrants with the requesting officer resolved.
func (s *WarrantService) List(ctx context.Context) ([]models.WarrantWithOfficer, error) {
	warrants, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list warrants")
	}
	if warrants == nil {
		warrants = []models.WarrantWithOfficer{}
	}
	return warrants, nil
}

// Create files a new warrant request in pending state.
func (s *WarrantService) Create(ctx context.Context, officerID int64, req CreateWarrantRequest) (*models.Warrant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	warrant := &models.Warrant{
		SuspectName: req.SuspectName,
		Reason:      req.Reason,
		OfficerID:   officerID,
		Status:      models.WarrantPending,
	}
	if err := s.repo.Create(ctx, warrant); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create warrant")
	}

	s.logger.Info("warrant requested", zap.Int64("warrant_id", warrant.ID), zap.Int64("officer_id", officerID))
	return warrant, nil
}

// Transition moves a warrant to a new status. Approval and denial require
// the admin role; execution is open to any authenticated officer so field
// units can act on warrants approved by command staff. Rejected transitions
// never touch the stored status.
func (s *WarrantService) Transition(ctx context.Context, id int64, actor *models.JWTClaims, req TransitionWarrantRequest) (*models.Warrant, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status must be one of approved, denied, executed")
	}
	target := models.WarrantStatus(req.Status)

	warrant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "warrant not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load warrant")
	}

	if (target == models.WarrantApproved || target == models.WarrantDenied) && actor.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only administrators may approve or deny warrants")
	}

	if !models.ValidWarrantTransition(warrant.Status, target) {
		return nil, appErrors.Clone(appErrors.ErrInvalidTransition,
			fmt.Sprintf("cannot move warrant from %s to %s", warrant.Status, target))
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update warrant")
	}

	s.logger.Info("warrant transitioned",
		zap.Int64("warrant_id", id),
		zap.String("from", string(warrant.Status)),
		zap.String("to", string(target)),
		zap.Int64("actor_id", actor.OfficerID))

	warrant.Status = target
	return warrant, nil
}
