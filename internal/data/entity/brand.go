package entity

type Brand struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Logo        *string `db:"logo"`
	IsActive    bool    `db:"is_active"`
	Timestamps
}
