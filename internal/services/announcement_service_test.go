// File: internal/services/announcement_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/announcement"
)

func setupAnnouncements(t *testing.T) (*AnnouncementService, *gorm.DB, domain.User, domain.Branch) {
	t.Helper()

	db := newTestDB(t)
	_, br := seedChurch(t, db)
	admin := seedUser(t, db, "John Doe", "admin@church.org", domain.RoleSuperAdmin, &br.ID)

	svc, err := NewAnnouncementService(announcement.NewAnnouncementRepository(db), &NoOpLogger{})
	require.NoError(t, err)
	return svc, db, admin, br
}

func TestAnnouncementMarkdownRendering(t *testing.T) {
	svc, _, admin, _ := setupAnnouncements(t)
	ctx := context.Background()

	_, err := svc.Post(ctx, principalFor(admin), dtos.CreateAnnouncementRequest{
		Title:   "Launch",
		Content: "We are **excited** to launch!",
		Type:    domain.AnnouncementChurch,
	})
	require.NoError(t, err)

	rows, err := svc.List(ctx, principalFor(admin))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "We are **excited** to launch!", rows[0].Content)
	assert.Contains(t, rows[0].ContentHTML, "<strong>excited</strong>")
	assert.Equal(t, "John Doe", rows[0].SenderName)
}

func TestAnnouncementBranchScoping(t *testing.T) {
	svc, db, admin, br := setupAnnouncements(t)
	ctx := context.Background()

	var church domain.Church
	require.NoError(t, db.First(&church).Error)
	otherBranch := domain.Branch{ChurchID: church.ID, Name: "North Campus"}
	require.NoError(t, db.Create(&otherBranch).Error)
	northMember := seedUser(t, db, "Nina North", "nina@church.org", domain.RoleMember, &otherBranch.ID)
	mainMember := seedUser(t, db, "Bob Wilson", "bob@church.org", domain.RoleMember, &br.ID)

	_, err := svc.Post(ctx, principalFor(admin), dtos.CreateAnnouncementRequest{
		Title: "Everyone", Content: "All-church news", Type: domain.AnnouncementChurch,
	})
	require.NoError(t, err)
	_, err = svc.Post(ctx, principalFor(admin), dtos.CreateAnnouncementRequest{
		BranchID: &br.ID, Title: "Main only", Content: "Main campus news", Type: domain.AnnouncementBranch,
	})
	require.NoError(t, err)

	mainRows, err := svc.List(ctx, principalFor(mainMember))
	require.NoError(t, err)
	assert.Len(t, mainRows, 2)

	northRows, err := svc.List(ctx, principalFor(northMember))
	require.NoError(t, err)
	require.Len(t, northRows, 1, "branch announcements stay in their branch")
	assert.Equal(t, "Everyone", northRows[0].Title)
}

func TestAnnouncementBranchDefaultsToSender(t *testing.T) {
	svc, db, _, br := setupAnnouncements(t)
	ctx := context.Background()

	leader := seedUser(t, db, "Jane Smith", "jane@church.org", domain.RoleGroupLeader, &br.ID)

	created, err := svc.Post(ctx, principalFor(leader), dtos.CreateAnnouncementRequest{
		Title: "Branch news", Content: "Potluck Friday", Type: domain.AnnouncementBranch,
	})
	require.NoError(t, err)
	require.NotNil(t, created.BranchID)
	assert.Equal(t, br.ID, *created.BranchID)

	// A branch announcement from a principal with no branch is rejected.
	nomad := seedUser(t, db, "No Branch", "nomad@church.org", domain.RoleMember, nil)
	_, err = svc.Post(ctx, principalFor(nomad), dtos.CreateAnnouncementRequest{
		Title: "Lost", Content: "Where am I", Type: domain.AnnouncementBranch,
	})
	assert.ErrorIs(t, err, ErrBranchRequired)
}
