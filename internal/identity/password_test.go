package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, h.Verify(hash, "secret"))
	assert.False(t, h.Verify(hash, "wrong"))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	h1, err := h.Hash("secret")
	require.NoError(t, err)
	h2, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Verify(h1, "secret"))
	assert.True(t, h.Verify(h2, "secret"))
}

func TestPasswordHasher_RejectsOverlongPassword(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestNewPasswordHasher_ClampsInvalidCost(t *testing.T) {
	h := NewPasswordHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
