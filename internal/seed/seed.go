// File: internal/seed/seed.go

// Package seed populates a fresh database with a demo congregation so
// the dashboard is usable immediately after first boot.
package seed

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
)

// DefaultPassword is the login password for every seeded account.
const DefaultPassword = "changeme123"

// Run seeds the demo data. It is a no-op when a church already exists,
// so restarting the server never duplicates rows.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Church{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("[Seed] Empty database, seeding demo congregation")

	return db.Transaction(func(tx *gorm.DB) error {
		church := domain.Church{Name: "Grace Community Church"}
		if err := tx.Create(&church).Error; err != nil {
			return err
		}

		branch := domain.Branch{ChurchID: church.ID, Name: "Main Campus", Location: "Downtown"}
		if err := tx.Create(&branch).Error; err != nil {
			return err
		}

		superAdmin, err := seedUser(tx, "John Doe", "admin@church.org", domain.RoleSuperAdmin, &branch.ID)
		if err != nil {
			return err
		}
		leader, err := seedUser(tx, "Jane Smith", "jane@church.org", domain.RoleGroupLeader, &branch.ID)
		if err != nil {
			return err
		}
		member, err := seedUser(tx, "Bob Wilson", "bob@church.org", domain.RoleMember, &branch.ID)
		if err != nil {
			return err
		}

		group := domain.Group{
			BranchID:    branch.ID,
			Name:        "Worship Team",
			Type:        "Ministry",
			Description: "Praise and worship coordination",
			MeetingURL:  "https://meet.google.com/abc-defg-hij",
		}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		memberships := []domain.GroupMember{
			{UserID: leader.ID, GroupID: group.ID, RoleInGroup: "Leader"},
			{UserID: member.ID, GroupID: group.ID, RoleInGroup: "Vocalist"},
		}
		if err := tx.Create(&memberships).Error; err != nil {
			return err
		}

		if err := tx.Create(&domain.Message{
			GroupID:  group.ID,
			SenderID: leader.ID,
			Content:  "Hi team, rehearsal is at 6 PM tomorrow!",
		}).Error; err != nil {
			return err
		}

		serviceTime := time.Date(2026, time.February, 22, 9, 0, 0, 0, time.UTC)
		event := domain.Event{
			BranchID:    branch.ID,
			GroupID:     &group.ID,
			Title:       "Sunday Service",
			Description: "Weekly worship service",
			StartTime:   &serviceTime,
			Location:    "Main Sanctuary",
			MeetingURL:  "https://meet.google.com/xyz-pdq-rst",
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		if err := tx.Create(&domain.Announcement{
			SenderID: superAdmin.ID,
			Title:    "Welcome to ChurchOS",
			Content:  "We are excited to launch our new unified platform!",
			Type:     domain.AnnouncementChurch,
		}).Error; err != nil {
			return err
		}

		buildingDeadline := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
		building := domain.Campaign{
			ChurchID:         church.ID,
			Title:            "Building Project 2026",
			Description:      "Expanding our main sanctuary to accommodate more members.",
			TargetAmount:     50000,
			Deadline:         &buildingDeadline,
			VisibilityPolicy: domain.VisibilityParticipants,
			Status:           domain.CampaignActive,
		}
		if err := tx.Create(&building).Error; err != nil {
			return err
		}

		campDeadline := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		if err := tx.Create(&domain.Campaign{
			ChurchID:         church.ID,
			BranchID:         &branch.ID,
			Title:            "Youth Camp Fund",
			Description:      "Sending 50 youths to the annual summer camp.",
			TargetAmount:     5000,
			Deadline:         &campDeadline,
			VisibilityPolicy: domain.VisibilityFull,
			Status:           domain.CampaignActive,
		}).Error; err != nil {
			return err
		}

		contributions := []domain.Contribution{
			{UserID: member.ID, CampaignID: building.ID, Amount: 500, Method: "Bank Transfer", RecordedBy: superAdmin.ID, Status: "verified"},
			{UserID: leader.ID, CampaignID: building.ID, Amount: 1000, Method: "Cash", RecordedBy: superAdmin.ID, Status: "verified"},
		}
		if err := tx.Create(&contributions).Error; err != nil {
			return err
		}

		needs := []domain.VolunteerNeed{
			{BranchID: branch.ID, EventID: &event.ID, RoleName: "Greeter", Description: "Welcome members at the main entrance", RequiredCount: 2, Status: domain.NeedOpen},
			{BranchID: branch.ID, EventID: &event.ID, RoleName: "Coffee Station", Description: "Prepare and serve coffee before service", RequiredCount: 1, Status: domain.NeedOpen},
			{BranchID: branch.ID, EventID: &event.ID, RoleName: "Tech Booth", Description: "Operate slides and sound board", RequiredCount: 1, Status: domain.NeedOpen},
		}
		return tx.Create(&needs).Error
	})
}

func seedUser(tx *gorm.DB, name, email, role string, branchID *uint) (*domain.User, error) {
	usr := domain.User{Name: name, Email: email, Role: role, BranchID: branchID}
	if err := usr.HashPassword(DefaultPassword); err != nil {
		return nil, err
	}
	if err := tx.Create(&usr).Error; err != nil {
		return nil, err
	}
	return &usr, nil
}
