package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spvm/records-api/internal/models"
)

// ArrestRepository provides database access to arrest reports.
type ArrestRepository struct {
	db *sqlx.DB
}

// NewArrestRepository creates a new instance of ArrestRepository.
func NewArrestRepository(db *sqlx.DB) *ArrestRepository {
	return &ArrestRepository{db: db}
}

// List returns arrest reports newest first with officer details resolved.
func (r *ArrestRepository) List(ctx context.Context) ([]models.ArrestReportWithOfficer, error) {
	const query = `SELECT a.id, a.suspect_name, a.officer_id, a.charges, a.details, a.created_at, o.full_name AS officer_name, o.badge_number
		FROM arrest_reports a
		JOIN officers o ON a.officer_id = o.id
		ORDER BY a.id DESC`
	var reports []models.ArrestReportWithOfficer
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("list arrest reports: %w", err)
	}
	return reports, nil
}

// Create inserts a new arrest report. Reports are immutable once created.
func (r *ArrestRepository) Create(ctx context.Context, report *models.ArrestReport) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO arrest_reports (suspect_name, officer_id, charges, details, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		report.SuspectName,
		report.OfficerID,
		report.Charges,
		report.Details,
		report.CreatedAt,
	).Scan(&report.ID); err != nil {
		return fmt.Errorf("create arrest report: %w", err)
	}
	return nil
}
