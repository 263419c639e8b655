package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spvm/records-api/internal/models"
)

// SanctionRepository provides database access to disciplinary sanctions.
type SanctionRepository struct {
	db *sqlx.DB
}

// NewSanctionRepository creates a new instance of SanctionRepository.
func NewSanctionRepository(db *sqlx.DB) *SanctionRepository {
	return &SanctionRepository{db: db}
}

// List returns sanctions newest first with both officers resolved.
func (r *SanctionRepository) List(ctx context.Context) ([]models.SanctionWithOfficers, error) {
	const query = `SELECT s.id, s.officer_id, s.issued_by, s.reason, s.created_at,
			officer.full_name AS officer_name, officer.badge_number AS officer_badge,
			issuer.full_name AS issuer_name, issuer.badge_number AS issuer_badge
		FROM sanctions s
		JOIN officers officer ON s.officer_id = officer.id
		JOIN officers issuer ON s.issued_by = issuer.id
		ORDER BY s.id DESC`
	var sanctions []models.SanctionWithOfficers
	if err := r.db.SelectContext(ctx, &sanctions, query); err != nil {
		return nil, fmt.Errorf("list sanctions: %w", err)
	}
	return sanctions, nil
}

// Create inserts a new sanction. Sanctions are immutable once created.
func (r *SanctionRepository) Create(ctx context.Context, sanction *models.Sanction) error {
	if sanction.CreatedAt.IsZero() {
		sanction.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO sanctions (officer_id, issued_by, reason, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		sanction.OfficerID,
		sanction.IssuedBy,
		sanction.Reason,
		sanction.CreatedAt,
	).Scan(&sanction.ID); err != nil {
		return fmt.Errorf("create sanction: %w", err)
	}
	return nil
}
