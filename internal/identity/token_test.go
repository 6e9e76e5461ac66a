package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("s"), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("s"))
	assert.Error(t, err)
}

func TestGenerateToken_Unique(t *testing.T) {
	a, err := GenerateToken("user-1", []byte("s"), time.Hour)
	require.NoError(t, err)
	b, err := GenerateToken("user-1", []byte("s"), time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
