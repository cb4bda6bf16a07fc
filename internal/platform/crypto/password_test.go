package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptManager_HashAndCompare(t *testing.T) {
	mgr := NewBcryptManager(bcrypt.MinCost)

	hash, err := mgr.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash, "digest must not be the plaintext")

	assert.NoError(t, mgr.Compare(hash, "secret"))
	assert.Error(t, mgr.Compare(hash, "wrong"))
}

func TestBcryptManager_DefaultCost(t *testing.T) {
	mgr := NewBcryptManager(0)
	assert.Equal(t, bcrypt.DefaultCost, mgr.cost)
}
