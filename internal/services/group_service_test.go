// File: internal/services/group_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/repository/group"
	"github.com/graceworks/churchos/internal/repository/message"
)

type groupFixture struct {
	db      *gorm.DB
	svc     *GroupService
	leader  domain.User
	member  domain.User
	visitor domain.User
	admin   domain.User
	group   domain.Group
}

func setupGroups(t *testing.T) groupFixture {
	t.Helper()

	db := newTestDB(t)
	_, branch := seedChurch(t, db)

	leader := seedUser(t, db, "Jane Smith", "jane@church.org", domain.RoleGroupLeader, &branch.ID)
	member := seedUser(t, db, "Bob Wilson", "bob@church.org", domain.RoleMember, &branch.ID)
	visitor := seedUser(t, db, "Eve Ray", "eve@church.org", domain.RoleMember, &branch.ID)
	admin := seedUser(t, db, "John Doe", "admin@church.org", domain.RoleSuperAdmin, &branch.ID)

	grp := domain.Group{BranchID: branch.ID, Name: "Worship Team", Type: "Ministry"}
	require.NoError(t, db.Create(&grp).Error)
	require.NoError(t, db.Create(&[]domain.GroupMember{
		{UserID: leader.ID, GroupID: grp.ID, RoleInGroup: "Leader"},
		{UserID: member.ID, GroupID: grp.ID, RoleInGroup: "Vocalist"},
	}).Error)
	require.NoError(t, db.Create(&domain.Message{
		GroupID: grp.ID, SenderID: leader.ID, Content: "Rehearsal at 6 PM!",
	}).Error)

	svc, err := NewGroupService(group.NewGroupRepository(db), message.NewMessageRepository(db), &NoOpLogger{})
	require.NoError(t, err)
	return groupFixture{db: db, svc: svc, leader: leader, member: member, visitor: visitor, admin: admin, group: grp}
}

func TestGroupDetailMemberSeesHistory(t *testing.T) {
	f := setupGroups(t)

	detail, err := f.svc.GetGroupDetail(context.Background(), f.group.ID, principalFor(f.member))
	require.NoError(t, err)

	assert.True(t, detail.IsMember)
	require.Len(t, detail.Messages, 1)
	assert.Equal(t, "Rehearsal at 6 PM!", detail.Messages[0].Content)
	assert.Equal(t, "Jane Smith", detail.Messages[0].SenderName)
	assert.Len(t, detail.Members, 2)
}

func TestGroupDetailNonMemberGetsEmptyHistory(t *testing.T) {
	f := setupGroups(t)

	detail, err := f.svc.GetGroupDetail(context.Background(), f.group.ID, principalFor(f.visitor))
	require.NoError(t, err)

	assert.False(t, detail.IsMember)
	assert.Empty(t, detail.Messages, "non-members must not read history")
	assert.NotNil(t, detail.Messages, "empty list, not null, so the page still renders")
	assert.Len(t, detail.Members, 2, "the roster itself is not gated")
}

func TestGroupDetailSuperAdminBypassesMembership(t *testing.T) {
	f := setupGroups(t)

	detail, err := f.svc.GetGroupDetail(context.Background(), f.group.ID, principalFor(f.admin))
	require.NoError(t, err)

	assert.False(t, detail.IsMember)
	assert.Len(t, detail.Messages, 1, "elevated roles read every group's history")
}

func TestGroupDetailUnknownGroup(t *testing.T) {
	f := setupGroups(t)

	_, err := f.svc.GetGroupDetail(context.Background(), 9999, principalFor(f.member))
	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}

func TestListGroupsBranchScoping(t *testing.T) {
	f := setupGroups(t)

	// A second branch with its own group.
	var church domain.Church
	require.NoError(t, f.db.First(&church).Error)
	other := domain.Branch{ChurchID: church.ID, Name: "North Campus"}
	require.NoError(t, f.db.Create(&other).Error)
	require.NoError(t, f.db.Create(&domain.Group{BranchID: other.ID, Name: "North Youth"}).Error)

	mine, err := f.svc.ListGroups(context.Background(), principalFor(f.member))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Worship Team", mine[0].Name)
	assert.Equal(t, 2, mine[0].MemberCount)

	all, err := f.svc.ListGroups(context.Background(), principalFor(f.admin))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
