package models

// Course is a row of the courses table.
type Course struct {
	ID      int64  `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Credits int64  `db:"credits" json:"credits"`
}
