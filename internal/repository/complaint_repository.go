package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spvm/records-api/internal/models"
)

// ComplaintRepository provides database access to citizen complaints.
type ComplaintRepository struct {
	db *sqlx.DB
}

// NewComplaintRepository creates a new instance of ComplaintRepository.
func NewComplaintRepository(db *sqlx.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// List returns complaints newest first.
func (r *ComplaintRepository) List(ctx context.Context) ([]models.Complaint, error) {
	const query = `SELECT id, citizen_name, officer_name, description, status, created_at FROM complaints ORDER BY id DESC`
	var complaints []models.Complaint
	if err := r.db.SelectContext(ctx, &complaints, query); err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// FindByID returns a complaint by identifier.
func (r *ComplaintRepository) FindByID(ctx context.Context, id int64) (*models.Complaint, error) {
	const query = `SELECT id, citizen_name, officer_name, description, status, created_at FROM complaints WHERE id = $1 LIMIT 1`
	var complaint models.Complaint
	if err := r.db.GetContext(ctx, &complaint, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find complaint by id: %w", err)
	}
	return &complaint, nil
}

// Create inserts a new complaint submitted by the public intake.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO complaints (citizen_name, officer_name, description, status, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		complaint.CitizenName,
		complaint.OfficerName,
		complaint.Description,
		complaint.Status,
		complaint.CreatedAt,
	).Scan(&complaint.ID); err != nil {
		return fmt.Errorf("create complaint: %w", err)
	}
	return nil
}

// UpdateStatus marks a complaint with the given status.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	const query = `UPDATE complaints SET status = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("update complaint status: %w", err)
	}
	return nil
}
