package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"trackvault/internal/security"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "password123", digest)

	assert.True(t, hasher.Verify("password123", digest))
	assert.False(t, hasher.Verify("wrongpassword", digest))
}

func TestPasswordHasher_FreshSaltPerCall(t *testing.T) {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("password123")
	assert.NoError(t, err)
	second, err := hasher.Hash("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("password123", first))
	assert.True(t, hasher.Verify("password123", second))
}

func TestPasswordHasher_CrossDigestMismatch(t *testing.T) {
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("password-one")
	assert.NoError(t, err)

	assert.False(t, hasher.Verify("password-two", digest))
}

func TestPasswordHasher_EmptyPlaintext(t *testing.T) {
	// Emptiness checks live in the service layer; the hasher itself
	// accepts an empty string.
	hasher := security.NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("")
	assert.NoError(t, err)
	assert.True(t, hasher.Verify("", digest))
	assert.False(t, hasher.Verify("notempty", digest))
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := security.NewPasswordHasher(99)

	digest, err := hasher.Hash("password123")
	assert.NoError(t, err)
	assert.True(t, hasher.Verify("password123", digest))
}
