package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("user-123", "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := VerifyToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestGenerateTokenMissingInputs(t *testing.T) {
	_, err := GenerateToken("", "secret", time.Hour)
	assert.Error(t, err)

	_, err = GenerateToken("user-123", "", time.Hour)
	assert.Error(t, err)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := GenerateToken("user-123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMalformed(t *testing.T) {
	_, err := VerifyToken("garbage", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifyToken("", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenUnsignedAlgRejected(t *testing.T) {
	// alg=none token with the same subject claim
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ1c2VyLTEyMyJ9."

	_, err := VerifyToken(unsigned, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
