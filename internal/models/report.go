package models

import "time"

// ArrestReport is an immutable record of an arrest filed by an officer.
type ArrestReport struct {
	ID          int64     `db:"id" json:"id"`
	SuspectName string    `db:"suspect_name" json:"suspect_name"`
	OfficerID   int64     `db:"officer_id" json:"officer_id"`
	Charges     string    `db:"charges" json:"charges"`
	Details     string    `db:"details" json:"details"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ArrestReportWithOfficer enriches a report with the issuing officer's
// display name and badge number at read time.
type ArrestReportWithOfficer struct {
	ArrestReport
	OfficerName string `db:"officer_name" json:"officer_name"`
	BadgeNumber string `db:"badge_number" json:"badge_number"`
}

// FineReport is an immutable record of a fine issued to a citizen.
type FineReport struct {
	ID          int64     `db:"id" json:"id"`
	CitizenName string    `db:"citizen_name" json:"citizen_name"`
	OfficerID   int64     `db:"officer_id" json:"officer_id"`
	Amount      int64     `db:"amount" json:"amount"`
	Reason      string    `db:"reason" json:"reason"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// FineReportWithOfficer enriches a fine with the issuing officer details.
type FineReportWithOfficer struct {
	FineReport
	OfficerName string `db:"officer_name" json:"officer_name"`
	BadgeNumber string `db:"badge_number" json:"badge_number"`
}
