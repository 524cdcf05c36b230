// File: internal/services/campaign_service_test.go
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
	"github.com/graceworks/churchos/internal/repository/campaign"
)

type campaignFixture struct {
	db    *gorm.DB
	svc   *CampaignService
	admin domain.User
	giver domain.User
	other domain.User
}

func setupCampaigns(t *testing.T) campaignFixture {
	t.Helper()

	db := newTestDB(t)
	_, branch := seedChurch(t, db)
	admin := seedUser(t, db, "John Doe", "admin@church.org", domain.RoleSuperAdmin, &branch.ID)
	giver := seedUser(t, db, "Bob Wilson", "bob@church.org", domain.RoleMember, &branch.ID)
	other := seedUser(t, db, "Eve Ray", "eve@church.org", domain.RoleMember, &branch.ID)

	svc, err := NewCampaignService(campaign.NewCampaignRepository(db), &NoOpLogger{})
	require.NoError(t, err)
	return campaignFixture{db: db, svc: svc, admin: admin, giver: giver, other: other}
}

func (f campaignFixture) createCampaign(t *testing.T, policy, status string) domain.Campaign {
	t.Helper()

	var church domain.Church
	require.NoError(t, f.db.First(&church).Error)
	deadline := time.Now().Add(90 * 24 * time.Hour)
	c := domain.Campaign{
		ChurchID:         church.ID,
		Title:            "Building Project",
		TargetAmount:     50000,
		Deadline:         &deadline,
		VisibilityPolicy: policy,
		Status:           status,
	}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f campaignFixture) contribute(t *testing.T, c domain.Campaign, giver domain.User, amount float64) {
	t.Helper()
	require.NoError(t, f.db.Create(&domain.Contribution{
		UserID: giver.ID, CampaignID: c.ID, Amount: amount,
		Method: "Cash", RecordedBy: f.admin.ID, Status: "verified",
	}).Error)
}

func TestLedgerPrivatePolicy(t *testing.T) {
	f := setupCampaigns(t)
	c := f.createCampaign(t, domain.VisibilityPrivate, domain.CampaignActive)
	f.contribute(t, c, f.giver, 500)
	f.contribute(t, c, f.other, 750)

	rows, err := f.svc.Ledger(context.Background(), principalFor(f.giver), c.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1, "private ledgers show only the caller's own gifts")
	assert.Equal(t, f.giver.ID, rows[0].UserID)

	all, err := f.svc.Ledger(context.Background(), principalFor(f.admin), c.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2, "super admins see the full ledger regardless of policy")
}

func TestLedgerParticipantsPolicy(t *testing.T) {
	f := setupCampaigns(t)
	c := f.createCampaign(t, domain.VisibilityParticipants, domain.CampaignActive)
	f.contribute(t, c, f.giver, 500)

	rows, err := f.svc.Ledger(context.Background(), principalFor(f.giver), c.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "contributors see the whole ledger")

	_, err = f.svc.Ledger(context.Background(), principalFor(f.other), c.ID)
	assert.ErrorIs(t, err, ErrLedgerRestricted, "non-contributors are shut out")
}

func TestLedgerFullPolicy(t *testing.T) {
	f := setupCampaigns(t)
	c := f.createCampaign(t, domain.VisibilityFull, domain.CampaignActive)
	f.contribute(t, c, f.giver, 500)

	rows, err := f.svc.Ledger(context.Background(), principalFor(f.other), c.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRecordContribution(t *testing.T) {
	f := setupCampaigns(t)
	c := f.createCampaign(t, domain.VisibilityFull, domain.CampaignActive)

	created, err := f.svc.RecordContribution(context.Background(), principalFor(f.admin), dtos.CreateContributionRequest{
		UserID:     f.giver.ID,
		CampaignID: c.ID,
		Amount:     250,
	})
	require.NoError(t, err)
	assert.Equal(t, f.admin.ID, created.RecordedBy, "the recorder is the principal, not the giver")
	assert.Equal(t, "cash", created.Method, "method defaults when omitted")

	mine, err := f.svc.MyContributions(context.Background(), principalFor(f.giver))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Building Project", mine[0].CampaignTitle)
}

func TestRecordContributionRejectsClosedCampaign(t *testing.T) {
	f := setupCampaigns(t)
	c := f.createCampaign(t, domain.VisibilityFull, domain.CampaignClosed)

	_, err := f.svc.RecordContribution(context.Background(), principalFor(f.admin), dtos.CreateContributionRequest{
		UserID:     f.giver.ID,
		CampaignID: c.ID,
		Amount:     250,
	})
	assert.ErrorIs(t, err, ErrCampaignClosed)
}

func TestRecordContributionValidation(t *testing.T) {
	f := setupCampaigns(t)
	c := f.createCampaign(t, domain.VisibilityFull, domain.CampaignActive)

	_, err := f.svc.RecordContribution(context.Background(), principalFor(f.admin), dtos.CreateContributionRequest{
		UserID: f.giver.ID, CampaignID: c.ID, Amount: -5,
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.svc.RecordContribution(context.Background(), principalFor(f.admin), dtos.CreateContributionRequest{
		CampaignID: c.ID, Amount: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidContributor)
}
