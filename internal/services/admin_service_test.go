// File: internal/services/admin_service_test.go
package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/audit"
	"github.com/graceworks/churchos/internal/repository/branch"
	"github.com/graceworks/churchos/internal/repository/invitation"
	"github.com/graceworks/churchos/internal/repository/user"
)

func setupAdmin(t *testing.T) (*AdminService, *gorm.DB, domain.User, domain.Branch) {
	t.Helper()

	db := newTestDB(t)
	_, br := seedChurch(t, db)
	admin := seedUser(t, db, "John Doe", "admin@church.org", domain.RoleSuperAdmin, &br.ID)

	svc, err := NewAdminService(
		user.NewUserRepository(db),
		branch.NewBranchRepository(db),
		invitation.NewInvitationRepository(db),
		audit.NewAuditRepository(db),
		&NoOpLogger{},
	)
	require.NoError(t, err)
	return svc, db, admin, br
}

func TestNewInvitationCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code := NewInvitationCode()
		assert.Len(t, code, 6)
		assert.Equal(t, strings.ToUpper(code), code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "codes should not repeat constantly")
}

func TestChangeRoleWritesAudit(t *testing.T) {
	svc, db, admin, br := setupAdmin(t)
	target := seedUser(t, db, "Bob Wilson", "bob@church.org", domain.RoleMember, &br.ID)

	err := svc.ChangeRole(context.Background(), principalFor(admin), target.ID, domain.RoleGroupLeader)
	require.NoError(t, err)

	var updated domain.User
	require.NoError(t, db.First(&updated, target.ID).Error)
	assert.Equal(t, domain.RoleGroupLeader, updated.Role)

	logs, err := svc.AuditLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "role_changed", logs[0].Action)
	assert.Equal(t, admin.ID, logs[0].UserID)
	assert.Equal(t, target.ID, logs[0].TargetID)
	assert.Contains(t, logs[0].Details, "member -> group_leader")
}

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	svc, db, admin, br := setupAdmin(t)
	target := seedUser(t, db, "Bob Wilson", "bob@church.org", domain.RoleMember, &br.ID)

	err := svc.ChangeRole(context.Background(), principalFor(admin), target.ID, "emperor")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestCreateInvitation(t *testing.T) {
	svc, _, admin, br := setupAdmin(t)

	created, err := svc.CreateInvitation(context.Background(), principalFor(admin), dtos.CreateInvitationRequest{
		BranchID: &br.ID,
		Role:     domain.RoleMember,
	})
	require.NoError(t, err)
	assert.Len(t, created.Code, 6)
	require.NotNil(t, created.ExpiresAt)
	assert.Nil(t, created.UsedAt)

	// Nobody hands out super admin through a shareable code.
	_, err = svc.CreateInvitation(context.Background(), principalFor(admin), dtos.CreateInvitationRequest{
		Role: domain.RoleSuperAdmin,
	})
	assert.ErrorIs(t, err, ErrUnknownRole)

	list, err := svc.ListInvitations(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateBranchWritesAudit(t *testing.T) {
	svc, db, admin, _ := setupAdmin(t)

	var church domain.Church
	require.NoError(t, db.First(&church).Error)

	created, err := svc.CreateBranch(context.Background(), principalFor(admin), dtos.CreateBranchRequest{
		ChurchID: church.ID,
		Name:     "  North Campus  ",
		Location: "Uptown",
	})
	require.NoError(t, err)
	assert.Equal(t, "North Campus", created.Name)

	logs, err := svc.AuditLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "branch_created", logs[0].Action)
}
