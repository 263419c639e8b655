package models

// Role represents the two-level system role model.
type Role string

const (
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

// EmploymentStatus marks whether an officer is still on the roster.
type EmploymentStatus string

const (
	EmploymentActive   EmploymentStatus = "active"
	EmploymentInactive EmploymentStatus = "inactive"
)

// DutyStatus is the self-reported availability state of an officer.
type DutyStatus string

const (
	DutyAvailable   DutyStatus = "available"
	DutyUnavailable DutyStatus = "unavailable"
	DutyPatrol      DutyStatus = "patrol"
	DutyTrafficStop DutyStatus = "traffic-stop"
	DutyEnRoute     DutyStatus = "en-route"
)

// Officer represents a staff account stored in the officers table.
type Officer struct {
	ID           int64            `db:"id" json:"id"`
	Username     string           `db:"username" json:"username"`
	PasswordHash string           `db:"password_hash" json:"-"`
	FullName     string           `db:"full_name" json:"full_name"`
	BadgeNumber  string           `db:"badge_number" json:"badge_number"`
	RankID       int64            `db:"rank_id" json:"rank_id"`
	Role         Role             `db:"role" json:"role"`
	Status       EmploymentStatus `db:"status" json:"status"`
	DutyStatus   DutyStatus       `db:"duty_status" json:"duty_status"`
}

// OfficerWithRank is the roster row enriched with the rank display name.
// The rank name is resolved by join at read time; the ranks table stays the
// single source of truth.
type OfficerWithRank struct {
	Officer
	RankName string `db:"rank_name" json:"rank_name"`
}
