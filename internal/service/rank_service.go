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

type rankRepository interface {
	List(ctx context.Context) ([]models.Rank, error)
	FindByID(ctx context.Context, id int64) (*models.Rank, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, rank *models.Rank) error
	Update(ctx context.Context, rank *models.Rank) error
	Delete(ctx context.Context, id int64) error
}

type officerCounter interface {
	CountByRank(ctx context.Context, rankID int64) (int, error)
}

// RankRequest captures fields for creating or updating a rank.
type RankRequest struct {
	Name             string `json:"name" validate:"required"`
	Responsibilities string `json:"responsibilities" validate:"required"`
}

// RankService handles rank catalog workflows.
type RankService struct {
	repo      rankRepository
	officers  officerCounter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRankService creates a new rank service.
func NewRankService(repo rankRepository, officers officerCounter, validate *validator.Validate, logger *zap.Logger) *RankService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RankService{repo: repo, officers: officers, validator: validate, logger: logger}
}

// List returns the rank catalog.
func (s *RankService) List(ctx context.Context) ([]models.Rank, error) {
	ranks, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list ranks")
	}
	if ranks == nil {
		ranks = []models.Rank{}
	}
	return ranks, nil
}

// Create adds a rank to the catalog.
func (s *RankService) Create(ctx context.Context, req RankRequest) (*models.Rank, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	if exists, err := s.repo.ExistsByName(ctx, req.Name, 0); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check rank name")
	} else if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "rank name already exists")
	}

	rank := &models.Rank{Name: req.Name, Responsibilities: req.Responsibilities}
	if err := s.repo.Create(ctx, rank); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create rank")
	}
	return rank, nil
}

// Update modifies a rank entry.
func (s *RankService) Update(ctx context.Context, id int64, req RankRequest) (*models.Rank, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	rank, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "rank not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load rank")
	}

	if exists, err := s.repo.ExistsByName(ctx, req.Name, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check rank name")
	} else if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, "rank name already exists")
	}

	rank.Name = req.Name
	rank.Responsibilities = req.Responsibilities
	if err := s.repo.Update(ctx, rank); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update rank")
	}
	return rank, nil
}

// Delete removes a rank. A rank still assigned to officers is never
// silently orphaned; the delete is rejected instead.
func (s *RankService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "rank not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load rank")
	}

	count, err := s.officers.CountByRank(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count rank assignments")
	}
	if count > 0 {
		return appErrors.Clone(appErrors.ErrRankInUse, "")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete rank")
	}
	return nil
}
