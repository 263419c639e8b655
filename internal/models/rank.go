package models

// Rank represents an entry in the rank catalog.
type Rank struct {
	ID               int64  `db:"id" json:"id"`
	Name             string `db:"name" json:"name"`
	Responsibilities string `db:"responsibilities" json:"responsibilities"`
}
