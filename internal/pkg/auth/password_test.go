package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("samepassword")
	require.NoError(t, err)

	second, err := HashPassword("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
