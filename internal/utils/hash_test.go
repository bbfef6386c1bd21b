package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt hash, got %q", hash)
	assert.NoError(t, CheckPassword(hash, "secret1"))
}

func TestHashPassword_UsesRequestedCost(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost+1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestHashPassword_InvalidCostFallsBackToDefault(t *testing.T) {
	hash, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestHashPassword_SaltDiffers(t *testing.T) {
	h1, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
		anyErr   bool
	}{
		{name: "match", hash: hash, password: "secret1"},
		{name: "mismatch", hash: hash, password: "secret2", wantErr: ErrPasswordMismatch},
		{name: "case sensitive", hash: hash, password: "SECRET1", wantErr: ErrPasswordMismatch},
		{name: "malformed hash", hash: "plain-text", password: "secret1", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.hash, tt.password)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrPasswordMismatch)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
