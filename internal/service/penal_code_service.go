package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spvm/records-api/internal/models"
	appErrors "github.com/spvm/records-api/pkg/errors"
)

const penalCodeCacheKey = "penal_code:list"

type penalCodeRepository interface {
	List(ctx context.Context) ([]models.PenalCodeArticle, error)
	FindByID(ctx context.Context, id int64) (*models.PenalCodeArticle, error)
	Create(ctx context.Context, article *models.PenalCodeArticle) error
	Update(ctx context.Context, article *models.PenalCodeArticle) error
	Delete(ctx context.Context, id int64) error
}

type referenceCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type cacheObserver interface {
	RecordCacheOperation(hit bool, duration time.Duration)
}

// PenalCodeRequest captures fields for creating or updating an article.
// Fine amounts and custodial days must be non-negative integers.
type PenalCodeRequest struct {
	Article     string `json:"article" validate:"required"`
	Description string `json:"description" validate:"required"`
	FineAmount  *int64 `json:"fine_amount" validate:"required,gte=0"`
	JailTime    *int64 `json:"jail_time" validate:"required,gte=0"`
}

// PenalCodeService handles the penal-code reference catalog. Listings are
// cached because the catalog is read on nearly every client screen.
type PenalCodeService struct {
	repo      penalCodeRepository
	cache     referenceCache
	metrics   cacheObserver
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPenalCodeService creates a new penal-code service. Cache may be nil.
func NewPenalCodeService(repo penalCodeRepository, cache referenceCache, metrics cacheObserver, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *PenalCodeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PenalCodeService{repo: repo, cache: cache, metrics: metrics, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

// List returns all articles, served from cache when possible.
func (s *PenalCodeService) List(ctx context.Context) ([]models.PenalCodeArticle, error) {
	if s.cache != nil {
		start := time.Now()
		var cached []models.PenalCodeArticle
		err := s.cache.Get(ctx, penalCodeCacheKey, &cached)
		if s.metrics != nil {
			s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		}
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("penal code cache lookup failed", zap.Error(err))
		}
	}

	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list penal code")
	}
	if articles == nil {
		articles = []models.PenalCodeArticle{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, penalCodeCacheKey, articles, s.cacheTTL); err != nil {
			s.logger.Warn("penal code cache store failed", zap.Error(err))
		}
	}

	return articles, nil
}

// Create adds a new article to the catalog.
func (s *PenalCodeService) Create(ctx context.Context, req PenalCodeRequest) (*models.PenalCodeArticle, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required and amounts must be non-negative")
	}

	article := &models.PenalCodeArticle{
		Article:     req.Article,
		Description: req.Description,
		FineAmount:  *req.FineAmount,
		JailTime:    *req.JailTime,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create penal code article")
	}

	s.invalidate(ctx)
	return article, nil
}

// Update modifies an existing article.
func (s *PenalCodeService) Update(ctx context.Context, id int64, req PenalCodeRequest) (*models.PenalCodeArticle, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required and amounts must be non-negative")
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "penal code article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load penal code article")
	}

	article.Article = req.Article
	article.Description = req.Description
	article.FineAmount = *req.FineAmount
	article.JailTime = *req.JailTime

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update penal code article")
	}

	s.invalidate(ctx)
	return article, nil
}

// Delete removes an article from the catalog.
func (s *PenalCodeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "penal code article not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load penal code article")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete penal code article")
	}

	s.invalidate(ctx)
	return nil
}

func (s *PenalCodeService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, penalCodeCacheKey); err != nil {
		s.logger.Warn("penal code cache invalidation failed", zap.Error(err))
	}
}
