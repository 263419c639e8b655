package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spvm/records-api/internal/models"
)

// WarrantRepository provides database access to arrest warrants.
type WarrantRepository struct {
	db *sqlx.DB
}

// NewWarrantRepository creates a new instance of WarrantRepository.
func NewWarrantRepository(db *sqlx.DB) *WarrantRepository {
	return &WarrantRepository{db: db}
}

// List returns warrants newest first with the requesting officer resolved.
func (r *WarrantRepository) List(ctx context.Context) ([]models.WarrantWithOfficer, error) {
	const query = `SELECT w.id, w.suspect_name, w.reason, w.officer_id, w.status, w.created_at, o.full_name AS officer_name, o.badge_number
		FROM warrants w
		JOIN officers o ON w.officer_id = o.id
		ORDER BY w.id DESC`
	var warrants []models.WarrantWithOfficer
	if err := r.db.SelectContext(ctx, &warrants, query); err != nil {
		return nil, fmt.Errorf("list warrants: %w", err)
	}
	return warrants, nil
}

// FindByID returns a warrant by identifier.
func (r *WarrantRepository) FindByID(ctx context.Context, id int64) (*models.Warrant, error) {
	const query = `SELECT id, suspect_name, reason, officer_id, status, created_at FROM warrants WHERE id = $1 LIMIT 1`
	var warrant models.Warrant
	if err := r.db.GetContext(ctx, &warrant, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find warrant by id: %w", err)
	}
	return &warrant, nil
}

// Create inserts a new warrant in pending state.
func (r *WarrantRepository) Create(ctx context.Context, warrant *models.Warrant) error {
	if warrant.CreatedAt.IsZero() {
		warrant.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO warrants (suspect_name, reason, officer_id, status, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		warrant.SuspectName,
		warrant.Reason,
		warrant.OfficerID,
		warrant.Status,
		warrant.CreatedAt,
	).Scan(&warrant.ID); err != nil {
		return fmt.Errorf("create warrant: %w", err)
	}
	return nil
}

// UpdateStatus stores a new warrant status. Concurrent transitions on the
// same warrant resolve last-write-wins at the storage layer.
func (r *WarrantRepository) UpdateStatus(ctx context.Context, id int64, status models.WarrantStatus) error {
	const query = `UPDATE warrants SET status = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("update warrant status: %w", err)
	}
	return nil
}
