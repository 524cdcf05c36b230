// File: internal/auth/jwt_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceworks/churchos/internal/domain"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	branchID := uint(4)
	user := &domain.User{ID: 12, Role: domain.RoleBranchAdmin, BranchID: &branchID}

	token, err := GenerateSessionToken(user, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	p, err := ValidateSessionToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(12), p.UserID)
	assert.Equal(t, domain.RoleBranchAdmin, p.Role)
	require.NotNil(t, p.BranchID)
	assert.Equal(t, uint(4), *p.BranchID)
	assert.False(t, p.Elevated())
}

func TestSessionTokenWithoutBranch(t *testing.T) {
	secret := []byte("test-secret")
	user := &domain.User{ID: 1, Role: domain.RoleSuperAdmin}

	token, err := GenerateSessionToken(user, secret)
	require.NoError(t, err)

	p, err := ValidateSessionToken(token, secret)
	require.NoError(t, err)
	assert.Nil(t, p.BranchID)
	assert.True(t, p.Elevated())
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	user := &domain.User{ID: 3, Role: domain.RoleMember}
	token, err := GenerateSessionToken(user, []byte("secret-a"))
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, []byte("secret-b"))
	assert.Error(t, err)
}

func TestGenerateSessionTokenRejectsZeroID(t *testing.T) {
	_, err := GenerateSessionToken(&domain.User{Role: domain.RoleMember}, []byte("x"))
	assert.Error(t, err)
}
