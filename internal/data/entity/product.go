package entity

type Product struct {
	ID int64 `db:"id"`
	// Name is stored lowercase/trimmed; uniqueness is scoped to
	// (name, brand_id).
	Name       string  `db:"name"`
	Price      float64 `db:"price"`
	Photo      *string `db:"photo"`
	CategoryID *int64  `db:"category_id"`
	BrandID    *int64  `db:"brand_id"`
	IsActive   bool    `db:"is_active"`
	Timestamps

	// Eagerly loaded relations, nil when the reference is NULL.
	Category *Category `db:"-"`
	Brand    *Brand    `db:"-"`
}
