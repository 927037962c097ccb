package utils

import "strconv"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseLimit parses a pagination limit, falling back to the default
// for empty, malformed or non-positive values.
func ParseLimit(value string, defaultValue int) int {
	limit := ParseInt(value, defaultValue)
	if limit < 1 {
		return defaultValue
	}
	return limit
}

// ParseOffset parses a pagination offset, clamping negatives to zero.
func ParseOffset(value string) int {
	offset := ParseInt(value, 0)
	if offset < 0 {
		return 0
	}
	return offset
}
