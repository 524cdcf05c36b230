// File: internal/services/auth_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/invitation"
	"github.com/graceworks/churchos/internal/repository/user"
)

func setupAuth(t *testing.T) (*AuthService, *gorm.DB, domain.Branch) {
	t.Helper()

	db := newTestDB(t)
	_, branch := seedChurch(t, db)
	svc, err := NewAuthService(user.NewUserRepository(db), invitation.NewInvitationRepository(db), "test-secret", &NoOpLogger{})
	require.NoError(t, err)
	return svc, db, branch
}

func TestLoginRoundTrip(t *testing.T) {
	svc, db, branch := setupAuth(t)
	seedUser(t, db, "Jane Smith", "jane@church.org", domain.RoleGroupLeader, &branch.ID)

	usr, token, err := svc.Login(context.Background(), "jane@church.org", "changeme123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, principal.UserID)
	assert.Equal(t, domain.RoleGroupLeader, principal.Role)
	require.NotNil(t, principal.BranchID)
	assert.Equal(t, branch.ID, *principal.BranchID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, db, branch := setupAuth(t)
	seedUser(t, db, "Jane Smith", "jane@church.org", domain.RoleGroupLeader, &branch.ID)

	_, _, err := svc.Login(context.Background(), "jane@church.org", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@church.org", "changeme123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRedeemsInvitation(t *testing.T) {
	svc, db, branch := setupAuth(t)
	admin := seedUser(t, db, "John Doe", "admin@church.org", domain.RoleSuperAdmin, &branch.ID)

	expires := time.Now().Add(time.Hour)
	inv := domain.Invitation{
		Code: "ABC123", BranchID: &branch.ID, Role: domain.RoleMember,
		CreatedBy: admin.ID, ExpiresAt: &expires,
	}
	require.NoError(t, db.Create(&inv).Error)

	req := dtos.RegisterRequest{
		Code: "abc123", Name: "New Member", Email: "New@Church.org", Password: "changeme123",
	}
	usr, token, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, domain.RoleMember, usr.Role, "the role comes from the invitation")
	assert.Equal(t, "new@church.org", usr.Email, "email is normalized")
	require.NotNil(t, usr.BranchID)
	assert.Equal(t, branch.ID, *usr.BranchID)

	// The code is single-use.
	_, _, err = svc.Register(context.Background(), dtos.RegisterRequest{
		Code: "ABC123", Name: "Another", Email: "another@church.org", Password: "changeme123",
	})
	assert.ErrorIs(t, err, ErrInvitationInvalid)
}

func TestRegisterRejectsExpiredInvitation(t *testing.T) {
	svc, db, branch := setupAuth(t)
	admin := seedUser(t, db, "John Doe", "admin@church.org", domain.RoleSuperAdmin, &branch.ID)

	expired := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&domain.Invitation{
		Code: "OLD999", Role: domain.RoleMember, CreatedBy: admin.ID, ExpiresAt: &expired,
	}).Error)

	_, _, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Code: "OLD999", Name: "Late Comer", Email: "late@church.org", Password: "changeme123",
	})
	assert.ErrorIs(t, err, ErrInvitationInvalid)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, db, branch := setupAuth(t)
	admin := seedUser(t, db, "John Doe", "admin@church.org", domain.RoleSuperAdmin, &branch.ID)
	seedUser(t, db, "Jane Smith", "jane@church.org", domain.RoleGroupLeader, &branch.ID)

	require.NoError(t, db.Create(&domain.Invitation{
		Code: "DUP111", Role: domain.RoleMember, CreatedBy: admin.ID,
	}).Error)

	_, _, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Code: "DUP111", Name: "Jane Again", Email: "jane@church.org", Password: "changeme123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
