package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "Hashes a regular password",
			password:    "gift-w3ll-s3cret",
			expectError: false,
		},
		{
			name:        "Rejects an empty password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := hashService.HashPassword(tt.password)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrEmptyPassword)
				assert.Empty(t, hashed)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, hashed)
			assert.NotEqual(t, tt.password, hashed)
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}

	hashed, err := hashService.HashPassword("gift-w3ll-s3cret")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		password       string
		hashedPassword string
		expectMatch    bool
	}{
		{
			name:           "Matches the original password",
			password:       "gift-w3ll-s3cret",
			hashedPassword: hashed,
			expectMatch:    true,
		},
		{
			name:           "Rejects a different password",
			password:       "not-the-secret",
			hashedPassword: hashed,
			expectMatch:    false,
		},
		{
			name:           "Rejects a malformed hash",
			password:       "gift-w3ll-s3cret",
			hashedPassword: "not-a-bcrypt-hash",
			expectMatch:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := hashService.ComparePassword(tt.hashedPassword, tt.password)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}
