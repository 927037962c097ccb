package entity

type Category struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	IsActive    bool    `db:"is_active"`
	Timestamps
}
