package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a PostgreSQL 23505 error.
// Pre-checks in the services are only an optimization; the race between
// check and insert is closed by the unique indexes, and callers use
// this helper to translate the constraint error into a domain error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// IsForeignKeyViolation reports whether err is a PostgreSQL 23503
// error, e.g. a product referencing a brand that no longer exists.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}
	return false
}

// ConstraintName returns the violated constraint's name, or "" when
// err is not a constraint error. Used to tell an email collision from
// a username collision after a lost pre-check race.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
