// File: internal/services/testutil_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
)

// newTestDB opens a private in-memory database migrated with the full
// schema. Each test gets its own so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.Church{}, &domain.Branch{}, &domain.User{},
		&domain.Group{}, &domain.GroupMember{}, &domain.Message{},
		&domain.Event{}, &domain.MeetingAttendance{},
		&domain.PrayerRequest{}, &domain.Announcement{},
		&domain.Campaign{}, &domain.Contribution{},
		&domain.AuditLog{}, &domain.Invitation{},
		&domain.VolunteerNeed{}, &domain.VolunteerSignup{},
	))
	return db
}

// seedChurch creates a church with one branch and returns both.
func seedChurch(t *testing.T, db *gorm.DB) (domain.Church, domain.Branch) {
	t.Helper()

	church := domain.Church{Name: "Grace Community Church"}
	require.NoError(t, db.Create(&church).Error)
	branch := domain.Branch{ChurchID: church.ID, Name: "Main Campus", Location: "Downtown"}
	require.NoError(t, db.Create(&branch).Error)
	return church, branch
}

// seedUser creates a user with a hashed password in the given branch.
func seedUser(t *testing.T, db *gorm.DB, name, email, role string, branchID *uint) domain.User {
	t.Helper()

	usr := domain.User{Name: name, Email: email, Role: role, BranchID: branchID}
	require.NoError(t, usr.HashPassword("changeme123"))
	require.NoError(t, db.Create(&usr).Error)
	return usr
}

func principalFor(usr domain.User) domain.Principal {
	return domain.Principal{UserID: usr.ID, Role: usr.Role, BranchID: usr.BranchID}
}
