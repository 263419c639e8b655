// Package bootstrap prepares the database schema and seed data on
// startup. Every statement is idempotent so repeated boots are safe.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spvm/records-api/pkg/config"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ranks (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		responsibilities TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS officers (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		badge_number TEXT NOT NULL UNIQUE,
		rank_id BIGINT NOT NULL REFERENCES ranks(id),
		role TEXT NOT NULL DEFAULT 'officer',
		status TEXT NOT NULL DEFAULT 'active',
		duty_status TEXT NOT NULL DEFAULT 'unavailable'
	)`,
	`CREATE TABLE IF NOT EXISTS penal_code (
		id BIGSERIAL PRIMARY KEY,
		article TEXT NOT NULL,
		description TEXT NOT NULL,
		fine_amount BIGINT NOT NULL DEFAULT 0,
		jail_time BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS arrest_reports (
		id BIGSERIAL PRIMARY KEY,
		suspect_name TEXT NOT NULL,
		officer_id BIGINT NOT NULL REFERENCES officers(id),
		charges TEXT NOT NULL,
		details TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS fine_reports (
		id BIGSERIAL PRIMARY KEY,
		citizen_name TEXT NOT NULL,
		officer_id BIGINT NOT NULL REFERENCES officers(id),
		amount BIGINT NOT NULL,
		reason TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS warrants (
		id BIGSERIAL PRIMARY KEY,
		suspect_name TEXT NOT NULL,
		reason TEXT NOT NULL,
		officer_id BIGINT NOT NULL REFERENCES officers(id),
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS complaints (
		id BIGSERIAL PRIMARY KEY,
		citizen_name TEXT NOT NULL,
		officer_name TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sanctions (
		id BIGSERIAL PRIMARY KEY,
		officer_id BIGINT NOT NULL REFERENCES officers(id),
		issued_by BIGINT NOT NULL REFERENCES officers(id),
		reason TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

var seedRanks = []struct {
	name             string
	responsibilities string
}{
	{"Cadet", "Foot patrol assistance and crime prevention"},
	{"Agent", "Patrol, call response, routine arrests"},
	{"Sergent", "Supervision of agents, crime scene management"},
	{"Lieutenant", "Neighbourhood station management"},
	{"Capitaine", "Division command and strategic planning"},
	{"Inspecteur", "Major investigations and internal affairs"},
	{"Directeur", "General direction of the service"},
}

var seedArticles = []struct {
	article     string
	description string
	fine        int64
	jail        int64
}{
	{"Art. 1", "Speeding", 150, 0},
	{"Art. 2", "Armed robbery", 5000, 60},
	{"Art. 3", "Armed assault", 10000, 120},
	{"Art. 4", "Drug possession", 500, 10},
}

// Run applies the schema and seeds the ranks catalog, the starter penal
// code and the administrator account when their tables are empty.
func Run(ctx context.Context, db *sqlx.DB, seed config.SeedConfig, logger *zap.Logger) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := seedRankCatalog(ctx, db, logger); err != nil {
		return err
	}
	if err := seedPenalCode(ctx, db, logger); err != nil {
		return err
	}
	return seedAdmin(ctx, db, seed, logger)
}

func seedRankCatalog(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM ranks`); err != nil {
		return fmt.Errorf("count ranks: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, r := range seedRanks {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO ranks (name, responsibilities) VALUES ($1, $2)`,
			r.name, r.responsibilities,
		); err != nil {
			return fmt.Errorf("seed rank %s: %w", r.name, err)
		}
	}
	logger.Info("seeded rank catalog", zap.Int("count", len(seedRanks)))
	return nil
}

func seedPenalCode(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM penal_code`); err != nil {
		return fmt.Errorf("count penal code: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, a := range seedArticles {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO penal_code (article, description, fine_amount, jail_time) VALUES ($1, $2, $3, $4)`,
			a.article, a.description, a.fine, a.jail,
		); err != nil {
			return fmt.Errorf("seed article %s: %w", a.article, err)
		}
	}
	logger.Info("seeded penal code", zap.Int("count", len(seedArticles)))
	return nil
}

func seedAdmin(ctx context.Context, db *sqlx.DB, seed config.SeedConfig, logger *zap.Logger) error {
	if seed.AdminUsername == "" || seed.AdminPassword == "" {
		logger.Warn("seed admin credentials not configured, skipping admin bootstrap")
		return nil
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM officers`); err != nil {
		return fmt.Errorf("count officers: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	var rankID int64
	if err := db.GetContext(ctx, &rankID, `SELECT id FROM ranks ORDER BY id DESC LIMIT 1`); err != nil {
		return fmt.Errorf("resolve admin rank: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO officers (username, password_hash, full_name, badge_number, rank_id, role, status, duty_status)
		 VALUES ($1, $2, $3, $4, $5, 'admin', 'active', 'unavailable')`,
		seed.AdminUsername, string(hash), "Directeur Général", "001", rankID,
	); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	logger.Info("seeded administrator account", zap.String("username", seed.AdminUsername))
	return nil
}
