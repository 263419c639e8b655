package models

import "time"

// WarrantStatus is the lifecycle state of an arrest warrant.
type WarrantStatus string

const (
	WarrantPending  WarrantStatus = "pending"
	WarrantApproved WarrantStatus = "approved"
	WarrantDenied   WarrantStatus = "denied"
	WarrantExecuted WarrantStatus = "executed"
)

// warrantTransitions lists the allowed source states per target state.
// denied and executed are terminal.
var warrantTransitions = map[WarrantStatus][]WarrantStatus{
	WarrantApproved: {WarrantPending},
	WarrantDenied:   {WarrantPending},
	WarrantExecuted: {WarrantApproved},
}

// ValidWarrantTransition reports whether a warrant may move from one status
// to another. Backward and skip transitions are never allowed.
func ValidWarrantTransition(from, to WarrantStatus) bool {
	for _, allowed := range warrantTransitions[to] {
		if allowed == from {
			return true
		}
	}
	return false
}

// Warrant is a request for arrest authority subject to approval.
type Warrant struct {
	ID          int64         `db:"id" json:"id"`
	SuspectName string        `db:"suspect_name" json:"suspect_name"`
	Reason      string        `db:"reason" json:"reason"`
	OfficerID   int64         `db:"officer_id" json:"officer_id"`
	Status      WarrantStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

// WarrantWithOfficer enriches a warrant with the requesting officer details.
type WarrantWithOfficer struct {
	Warrant
	OfficerName string `db:"officer_name" json:"officer_name"`
	BadgeNumber string `db:"badge_number" json:"badge_number"`
}
