package entity

import "time"

// Timestamps is embedded by every persisted entity.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
