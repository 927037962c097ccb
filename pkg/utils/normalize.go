package utils

import "strings"

// Normalization is applied explicitly by services immediately before
// every write, so the data-mutation path stays auditable. The storage
// schema carries the same invariants as unique indexes.

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername lowercases and trims a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeName lowercases, trims and collapses internal whitespace
// runs, so "Air  Max" and "air max" compare equal for uniqueness.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
