package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/spvm/records-api/internal/models"
)

// PenalCodeRepository provides database access to the penal-code catalog.
type PenalCodeRepository struct {
	db *sqlx.DB
}

// NewPenalCodeRepository creates a new instance of PenalCodeRepository.
func NewPenalCodeRepository(db *sqlx.DB) *PenalCodeRepository {
	return &PenalCodeRepository{db: db}
}

// List returns all articles newest first.
func (r *PenalCodeRepository) List(ctx context.Context) ([]models.PenalCodeArticle, error) {
	const query = `SELECT id, article, description, fine_amount, jail_time FROM penal_code ORDER BY id DESC`
	var articles []models.PenalCodeArticle
	if err := r.db.SelectContext(ctx, &articles, query); err != nil {
		return nil, fmt.Errorf("list penal code: %w", err)
	}
	return articles, nil
}

// FindByID returns an article by identifier.
func (r *PenalCodeRepository) FindByID(ctx context.Context, id int64) (*models.PenalCodeArticle, error) {
	const query = `SELECT id, article, description, fine_amount, jail_time FROM penal_code WHERE id = $1 LIMIT 1`
	var article models.PenalCodeArticle
	if err := r.db.GetContext(ctx, &article, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find penal code article: %w", err)
	}
	return &article, nil
}

// Create inserts a new article and stores the assigned id on the model.
func (r *PenalCodeRepository) Create(ctx context.Context, article *models.PenalCodeArticle) error {
	const query = `INSERT INTO penal_code (article, description, fine_amount, jail_time) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, article.Article, article.Description, article.FineAmount, article.JailTime).Scan(&article.ID); err != nil {
		return fmt.Errorf("create penal code article: %w", err)
	}
	return nil
}

// Update updates an article entry.
func (r *PenalCodeRepository) Update(ctx context.Context, article *models.PenalCodeArticle) error {
	const query = `UPDATE penal_code SET article = :article, description = :description, fine_amount = :fine_amount, jail_time = :jail_time WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, article); err != nil {
		return fmt.Errorf("update penal code article: %w", err)
	}
	return nil
}

// Delete removes an article from the catalog.
func (r *PenalCodeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM penal_code WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete penal code article: %w", err)
	}
	return nil
}
