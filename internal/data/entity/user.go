package entity

import (
	"time"

	"github.com/google/uuid"
)

const RoleUser = "user"

type User struct {
	ID uuid.UUID `db:"id"`
	// Username and Email are stored lowercase and trimmed. Services
	// re-apply the normalization before every write.
	Username string `db:"username"`
	Email    string `db:"email"`
	// PasswordHash is excluded from the default read projections;
	// only FindByEmailWithPassword scans it.
	PasswordHash string   `db:"password"`
	FullName     string   `db:"full_name"`
	IsActive     bool     `db:"is_active"`
	Roles        []string `db:"roles"`
	Timestamps
	LastLoginAt *time.Time `db:"last_login_at"`
}
