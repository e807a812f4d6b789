package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secure1!", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "Secure1!", hash)

	require.NoError(t, ComparePassword(hash, "Secure1!"))
	require.Error(t, ComparePassword(hash, "WrongPass"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("Secure1!", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("Secure1!", bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt salts per call
	assert.NotEqual(t, first, second)
}
