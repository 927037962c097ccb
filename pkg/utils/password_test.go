package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)

	assert.NotEqual(t, "Str0ng!pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	// Same input hashes to different values (random salt)
	hash2, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Str0ng!pass", hash))
	assert.False(t, CheckPasswordHash("Wr0ng!pass", hash))
	assert.False(t, CheckPasswordHash("", hash))
	assert.False(t, CheckPasswordHash("Str0ng!pass", "not-a-hash"))
}
