package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "test-secret-key-for-jwt-testing"
	testWrongSecret = "wrong-secret-key-for-jwt-testing"
)

func TestGenerateToken_Success(t *testing.T) {
	// Arrange
	userID := uuid.New()

	// Act
	token, err := GenerateToken(userID, testSecret)

	// Assert
	require.NoError(t, err, "GenerateToken should not return error for valid input")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.Contains(t, token, ".", "JWT token should contain dots")
}

func TestGenerateToken_Deterministic(t *testing.T) {
	// No expiry or issued-at claims are signed in, so the same id under
	// the same secret always produces the same token.
	userID := uuid.New()

	token1, err := GenerateToken(userID, testSecret)
	require.NoError(t, err)
	token2, err := GenerateToken(userID, testSecret)
	require.NoError(t, err)

	assert.Equal(t, token1, token2)
}

func TestValidateToken_Success(t *testing.T) {
	// Arrange
	userID := uuid.New()
	token, err := GenerateToken(userID, testSecret)
	require.NoError(t, err)

	// Act
	claims, err := ValidateToken(token, testSecret)

	// Assert
	require.NoError(t, err, "ValidateToken should accept a freshly generated token")
	assert.Equal(t, userID, claims.UserID, "Claims should carry the signed user id")
	assert.Nil(t, claims.ExpiresAt, "Tokens are issued without an expiry claim")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	token, err := GenerateToken(uuid.New(), testSecret)
	require.NoError(t, err)

	// Act
	claims, err := ValidateToken(token, testWrongSecret)

	// Assert
	assert.Error(t, err, "Token signed with a different secret must be rejected")
	assert.Nil(t, claims)
}

func TestValidateToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a jwt", "not-a-jwt-at-all"},
		{"truncated", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, testSecret)

			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_Tampered(t *testing.T) {
	// Arrange
	token, err := GenerateToken(uuid.New(), testSecret)
	require.NoError(t, err)

	// Flip a character in the payload segment
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	// Act
	claims, err := ValidateToken(string(tampered), testSecret)

	// Assert
	assert.Error(t, err, "Tampered token must fail signature verification")
	assert.Nil(t, claims)
}
