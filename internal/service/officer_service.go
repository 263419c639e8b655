package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
)

// foreignKeyViolation is the postgres error code raised when a delete
// would orphan rows that reference the officer.
const foreignKeyViolation = pq.ErrorCode("23503")

type officerRepository interface {
	List(ctx context.Context) ([]models.OfficerWithRank, error)
	FindByID(ctx context.Context, id int64) (*models.Officer, error)
	ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error)
	ExistsByBadge(ctx context.Context, badge string, excludeID int64) (bool, error)
	Create(ctx context.Context, officer *models.Officer) error
	Update(ctx context.Context, officer *models.Officer) error
	Delete(ctx context.Context, id int64) error
	SetDutyStatus(ctx context.Context, id int64, status models.DutyStatus) error
}

type rankLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Rank, error)
}

// CreateOfficerRequest captures fields for enrolling a new officer.
type CreateOfficerRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required"`
	BadgeNumber string `json:"badge_number" validate:"required"`
	RankID      int64  `json:"rank_id" validate:"required,gt=0"`
	Role        string `json:"role" validate:"omitempty,oneof=officer admin"`
}

// UpdateOfficerRequest modifies the admin-mutable profile fields.
type UpdateOfficerRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	BadgeNumber string `json:"badge_number" validate:"required"`
	RankID      int64  `json:"rank_id" validate:"required,gt=0"`
	Role        string `json:"role" validate:"required,oneof=officer admin"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

// SetDutyStatusRequest changes the caller's own duty status.
type SetDutyStatusRequest struct {
	DutyStatus string `json:"duty_status" validate:"required,oneof=available unavailable patrol traffic-stop en-route"`
}

// OfficerService handles roster management workflows.
type OfficerService struct {
	repo      officerRepository
	ranks     rankLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOfficerService creates a new officer service.
func NewOfficerService(repo officerRepository, ranks rankLookup, validate *validator.Validate, logger *zap.Logger) *OfficerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfficerService{repo: repo, ranks: ranks, validator: validate, logger: logger}
}

// List returns the roster with rank names resolved.
func (s *OfficerService) List(ctx context.Context) ([]models.OfficerWithRank, error) {
	officers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list officers")
	}
	if officers == nil {
		officers = []models.OfficerWithRank{}
	}
	return officers, nil
}

// Create enrolls a new officer after uniqueness and rank checks.
func (s *OfficerService) Create(ctx context.Context, req CreateOfficerRequest) (*models.Officer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	if err := s.ensureRankExists(ctx, req.RankID); err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, req.Username, req.BadgeNumber, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleOfficer
	}

	officer := &models.Officer{
		Username:     req.Username,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		BadgeNumber:  req.BadgeNumber,
		RankID:       req.RankID,
		Role:         role,
		Status:       models.EmploymentActive,
		DutyStatus:   models.DutyUnavailable,
	}

	if err := s.repo.Create(ctx, officer); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create officer")
	}

	s.logger.Info("officer created", zap.Int64("officer_id", officer.ID), zap.String("badge", officer.BadgeNumber))
	return officer, nil
}

// Update modifies an officer's profile fields.
func (s *OfficerService) Update(ctx context.Context, id int64, req UpdateOfficerRequest) (*models.Officer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	officer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "officer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load officer")
	}

	if err := s.ensureRankExists(ctx, req.RankID); err != nil {
		return nil, err
	}
	if exists, err := s.repo.ExistsByBadge(ctx, req.BadgeNumber, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check badge number")
	} else if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "badge number already in use")
	}

	officer.FullName = req.FullName
	officer.BadgeNumber = req.BadgeNumber
	officer.RankID = req.RankID
	officer.Role = models.Role(req.Role)
	officer.Status = models.EmploymentStatus(req.Status)

	if err := s.repo.Update(ctx, officer); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update officer")
	}

	return officer, nil
}

// Delete removes an officer. Officers can never delete their own account.
func (s *OfficerService) Delete(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return appErrors.Clone(appErrors.ErrSelfDelete, "")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "officer not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load officer")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return appErrors.Clone(appErrors.ErrOfficerInUse, "officer has filed records and cannot be deleted")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete officer")
	}

	s.logger.Info("officer deleted", zap.Int64("officer_id", id), zap.Int64("deleted_by", actorID))
	return nil
}

// SetDutyStatus updates the caller's own duty status.
func (s *OfficerService) SetDutyStatus(ctx context.Context, officerID int64, req SetDutyStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid duty status")
	}
	if err := s.repo.SetDutyStatus(ctx, officerID, models.DutyStatus(req.DutyStatus)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update duty status")
	}
	return nil
}

func (s *OfficerService) ensureRankExists(ctx context.Context, rankID int64) error {
	if _, err := s.ranks.FindByID(ctx, rankID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrValidation, "rank does not exist")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check rank")
	}
	return nil
}

func (s *OfficerService) ensureUnique(ctx context.Context, username, badge string, excludeID int64) error {
	if exists, err := s.repo.ExistsByUsername(ctx, username, excludeID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	} else if exists {
		return appErrors.Clone(appErrors.ErrDuplicate, "username or badge number already in use")
	}
	if exists, err := s.repo.ExistsByBadge(ctx, badge, excludeID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check badge number")
	} else if exists {
		return appErrors.Clone(appErrors.ErrDuplicate, "username or badge number already in use")
	}
	return nil
}
