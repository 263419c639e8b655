package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spvm/records-api/internal/models"
)

// FineRepository provides database access to fine reports.
type FineRepository struct {
	db *sqlx.DB
}

// NewFineRepository creates a new instance of FineRepository.
func NewFineRepository(db *sqlx.DB) *FineRepository {
	return &FineRepository{db: db}
}

// List returns fine reports newest first with officer details resolved.
func (r *FineRepository) List(ctx context.Context) ([]models.FineReportWithOfficer, error) {
	const query = `SELECT f.id, f.citizen_name, f.officer_id, f.amount, f.reason, f.created_at, o.full_name AS officer_name, o.badge_number
		FROM fine_reports f
		JOIN officers o ON f.officer_id = o.id
		ORDER BY f.id DESC`
	var fines []models.FineReportWithOfficer
	if err := r.db.SelectContext(ctx, &fines, query); err != nil {
		return nil, fmt.Errorf("list fine reports: %w", err)
	}
	return fines, nil
}

// Create inserts a new fine report. Reports are immutable once created.
func (r *FineRepository) Create(ctx context.Context, fine *models.FineReport) error {
	if fine.CreatedAt.IsZero() {
		fine.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO fine_reports (citizen_name, officer_id, amount, reason, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		fine.CitizenName,
		fine.OfficerID,
		fine.Amount,
		fine.Reason,
		fine.CreatedAt,
	).Scan(&fine.ID); err != nil {
		return fmt.Errorf("create fine report: %w", err)
	}
	return nil
}
