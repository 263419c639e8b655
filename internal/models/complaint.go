package models

import "time"

// ComplaintStatus tracks whether a citizen complaint has been handled.
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "pending"
	ComplaintResolved ComplaintStatus = "resolved"
)

// Complaint is a citizen-submitted grievance. The officer name is free text
// rather than a foreign key because complaints can name anyone.
type Complaint struct {
	ID          int64           `db:"id" json:"id"`
	CitizenName string          `db:"citizen_name" json:"citizen_name"`
	OfficerName string          `db:"officer_name" json:"officer_name"`
	Description string          `db:"description" json:"description"`
	Status      ComplaintStatus `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
