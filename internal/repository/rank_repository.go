package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/spvm/records-api/internal/models"
)

// RankRepository provides database access to the rank catalog.
type RankRepository struct {
	db *sqlx.DB
}

// NewRankRepository creates a new instance of RankRepository.
func NewRankRepository(db *sqlx.DB) *RankRepository {
	return &RankRepository{db: db}
}

// List returns all ranks newest first.
func (r *RankRepository) List(ctx context.Context) ([]models.Rank, error) {
	const query = `SELECT id, name, responsibilities FROM ranks ORDER BY id DESC`
	var ranks []models.Rank
	if err := r.db.SelectContext(ctx, &ranks, query); err != nil {
		return nil, fmt.Errorf("list ranks: %w", err)
	}
	return ranks, nil
}

// FindByID returns a rank by identifier.
func (r *RankRepository) FindByID(ctx context.Context, id int64) (*models.Rank, error) {
	const query = `SELECT id, name, responsibilities FROM ranks WHERE id = $1 LIMIT 1`
	var rank models.Rank
	if err := r.db.GetContext(ctx, &rank, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find rank by id: %w", err)
	}
	return &rank, nil
}

// ExistsByName reports whether a rank display name is already used.
func (r *RankRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM ranks WHERE name = $1 AND id <> $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name, excludeID); err != nil {
		return false, fmt.Errorf("check rank name exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new rank and stores the assigned id on the model.
func (r *RankRepository) Create(ctx context.Context, rank *models.Rank) error {
	const query = `INSERT INTO ranks (name, responsibilities) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, rank.Name, rank.Responsibilities).Scan(&rank.ID); err != nil {
		return fmt.Errorf("create rank: %w", err)
	}
	return nil
}

// Update updates a rank entry.
func (r *RankRepository) Update(ctx context.Context, rank *models.Rank) error {
	const query = `UPDATE ranks SET name = :name, responsibilities = :responsibilities WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, rank); err != nil {
		return fmt.Errorf("update rank: %w", err)
	}
	return nil
}

// Delete removes a rank from the catalog.
func (r *RankRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM ranks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete rank: %w", err)
	}
	return nil
}
