package models

import "time"

// Sanction is an immutable disciplinary record issued against an officer.
type Sanction struct {
	ID        int64     `db:"id" json:"id"`
	OfficerID int64     `db:"officer_id" json:"officer_id"`
	IssuedBy  int64     `db:"issued_by" json:"issued_by"`
	Reason    string    `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SanctionWithOfficers enriches a sanction with both the sanctioned officer
// and the issuer resolved at read time.
type SanctionWithOfficers struct {
	Sanction
	OfficerName  string `db:"officer_name" json:"officer_name"`
	OfficerBadge string `db:"officer_badge" json:"officer_badge"`
	IssuerName   string `db:"issuer_name" json:"issuer_name"`
	IssuerBadge  string `db:"issuer_badge" json:"issuer_badge"`
}
