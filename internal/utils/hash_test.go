package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Success(t *testing.T) {
	// Act
	hash, err := HashPassword("Secret123")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret123", hash, "Hash must not equal the plaintext")
	assert.True(t, strings.HasPrefix(hash, "$2"), "Expected a bcrypt hash")
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	// Same password hashed twice must differ (random salt)
	hash1, err := HashPassword("Secret123")
	require.NoError(t, err)
	hash2, err := HashPassword("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword_Correct(t *testing.T) {
	// Arrange
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)

	// Act
	valid, err := VerifyPassword("Secret123", hash)

	// Assert
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyPassword_Incorrect(t *testing.T) {
	// Arrange
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)

	// Act
	valid, err := VerifyPassword("WrongPassword", hash)

	// Assert
	require.NoError(t, err, "A mismatch is not an error, just false")
	assert.False(t, valid)
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	valid, err := VerifyPassword("Secret123", "not-a-bcrypt-hash")

	assert.Error(t, err)
	assert.False(t, valid)
}

func TestVerifyPassword_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)

	valid, err := VerifyPassword("", hash)

	require.NoError(t, err)
	assert.False(t, valid)
}
