package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john@example.com", NormalizeEmail("  John@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "johndoe", NormalizeUsername(" JohnDoe "))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Air Max", "air max"},
		{"  Air   Max  ", "air max"},
		{"air\tmax\n90", "air max 90"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "input %q", tt.in)
	}
}
