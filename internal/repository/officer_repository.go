package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/spvm/records-api/internal/models"
)

// OfficerRepository provides database access to the officer roster.
type OfficerRepository struct {
	db *sqlx.DB
}

// NewOfficerRepository creates a new instance of OfficerRepository.
func NewOfficerRepository(db *sqlx.DB) *OfficerRepository {
	return &OfficerRepository{db: db}
}

// FindByUsername returns an officer by username.
func (r *OfficerRepository) FindByUsername(ctx context.Context, username string) (*models.Officer, error) {
	const query = `SELECT id, username, password_hash, full_name, badge_number, rank_id, role, status, duty_status FROM officers WHERE username = $1 LIMIT 1`
	var officer models.Officer
	if err := r.db.GetContext(ctx, &officer, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find officer by username: %w", err)
	}
	return &officer, nil
}

// FindByID returns an officer by identifier.
func (r *OfficerRepository) FindByID(ctx context.Context, id int64) (*models.Officer, error) {
	const query = `SELECT id, username, password_hash, full_name, badge_number, rank_id, role, status, duty_status FROM officers WHERE id = $1 LIMIT 1`
	var officer models.Officer
	if err := r.db.GetContext(ctx, &officer, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find officer by id: %w", err)
	}
	return &officer, nil
}

// List returns the roster newest first with the rank name resolved by join.
func (r *OfficerRepository) List(ctx context.Context) ([]models.OfficerWithRank, error) {
	const query = `SELECT o.id, o.username, o.password_hash, o.full_name, o.badge_number, o.rank_id, o.role, o.status, o.duty_status, COALESCE(r.name, '') AS rank_name
		FROM officers o
		LEFT JOIN ranks r ON o.rank_id = r.id
		ORDER BY o.id DESC`
	var officers []models.OfficerWithRank
	if err := r.db.SelectContext(ctx, &officers, query); err != nil {
		return nil, fmt.Errorf("list officers: %w", err)
	}
	return officers, nil
}

// ExistsByUsername reports whether a username is already taken, optionally
// excluding one officer id (for updates).
func (r *OfficerRepository) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM officers WHERE username = $1 AND id <> $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, username, excludeID); err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

// ExistsByBadge reports whether a badge number is already assigned.
func (r *OfficerRepository) ExistsByBadge(ctx context.Context, badge string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM officers WHERE badge_number = $1 AND id <> $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, badge, excludeID); err != nil {
		return false, fmt.Errorf("check badge exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new officer and stores the assigned id on the model.
func (r *OfficerRepository) Create(ctx context.Context, officer *models.Officer) error {
	const query = `INSERT INTO officers (username, password_hash, full_name, badge_number, rank_id, role, status, duty_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		officer.Username,
		officer.PasswordHash,
		officer.FullName,
		officer.BadgeNumber,
		officer.RankID,
		officer.Role,
		officer.Status,
		officer.DutyStatus,
	).Scan(&officer.ID); err != nil {
		return fmt.Errorf("create officer: %w", err)
	}
	return nil
}

// Update updates the admin-mutable profile fields of an officer.
func (r *OfficerRepository) Update(ctx context.Context, officer *models.Officer) error {
	const query = `UPDATE officers SET full_name = :full_name, badge_number = :badge_number, rank_id = :rank_id, role = :role, status = :status WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, officer); err != nil {
		return fmt.Errorf("update officer: %w", err)
	}
	return nil
}

// Delete removes an officer from the roster.
func (r *OfficerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM officers WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete officer: %w", err)
	}
	return nil
}

// SetDutyStatus updates the self-reported duty status of an officer.
func (r *OfficerRepository) SetDutyStatus(ctx context.Context, id int64, status models.DutyStatus) error {
	const query = `UPDATE officers SET duty_status = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("set duty status: %w", err)
	}
	return nil
}

// CountByRank returns how many officers hold the given rank.
func (r *OfficerRepository) CountByRank(ctx context.Context, rankID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM officers WHERE rank_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, rankID); err != nil {
		return 0, fmt.Errorf("count officers by rank: %w", err)
	}
	return count, nil
}
