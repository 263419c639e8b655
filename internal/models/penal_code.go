package models

// PenalCodeArticle is a reference entry of the penal code catalog.
type PenalCodeArticle struct {
	ID          int64  `db:"id" json:"id"`
	Article     string `db:"article" json:"article"`
	Description string `db:"description" json:"description"`
	FineAmount  int64  `db:"fine_amount" json:"fine_amount"`
	JailTime    int64  `db:"jail_time" json:"jail_time"`
}
