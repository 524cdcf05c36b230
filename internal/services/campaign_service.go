// File: internal/services/campaign_service.go
package services

import (
	"context"
	"errors"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/campaign"
)

var (
	ErrCampaignClosed    = errors.New("campaign is closed")
	ErrLedgerRestricted  = errors.New("this campaign's ledger is not visible to you")
	ErrInvalidAmount     = errors.New("contribution amount must be positive")
	ErrInvalidContributor = errors.New("a contributor is required")
)

// CampaignService handles giving drives and their ledgers. Who may see
// a ledger follows the campaign's visibility policy; super admins see
// everything regardless.
type CampaignService struct {
	campaignRepo campaign.CampaignRepository
	logger       Logger
}

func NewCampaignService(campaignRepo campaign.CampaignRepository, logger Logger) (*CampaignService, error) {
	if campaignRepo == nil {
		return nil, errors.New("campaign repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &CampaignService{campaignRepo: campaignRepo, logger: logger}, nil
}

// ListCampaigns returns every campaign with running totals. Totals are
// aggregate and intentionally visible to all members regardless of
// ledger policy.
func (s *CampaignService) ListCampaigns(ctx context.Context) ([]dtos.CampaignResponse, error) {
	return s.campaignRepo.FindAllWithTotals(ctx)
}

// Ledger returns a campaign's contribution rows, filtered by the
// campaign's visibility policy:
//
//	private      - the caller sees only their own rows
//	participants - full ledger, but only if the caller has contributed
//	full         - full ledger for everyone
func (s *CampaignService) Ledger(ctx context.Context, principal domain.Principal, campaignID uint) ([]dtos.ContributionResponse, error) {
	c, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if principal.Elevated() {
		return s.campaignRepo.Contributions(ctx, campaignID, nil)
	}
	switch c.VisibilityPolicy {
	case domain.VisibilityFull:
		return s.campaignRepo.Contributions(ctx, campaignID, nil)
	case domain.VisibilityParticipants:
		own, err := s.campaignRepo.Contributions(ctx, campaignID, &principal.UserID)
		if err != nil {
			return nil, err
		}
		if len(own) == 0 {
			return nil, ErrLedgerRestricted
		}
		return s.campaignRepo.Contributions(ctx, campaignID, nil)
	default: // private
		return s.campaignRepo.Contributions(ctx, campaignID, &principal.UserID)
	}
}

// RecordContribution keys in a gift. Staff record gifts on behalf of
// givers, so the giver may differ from the principal.
func (s *CampaignService) RecordContribution(ctx context.Context, principal domain.Principal, req dtos.CreateContributionRequest) (*domain.Contribution, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.UserID == 0 {
		return nil, ErrInvalidContributor
	}
	c, err := s.campaignRepo.FindByID(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.CampaignActive {
		return nil, ErrCampaignClosed
	}
	method := req.Method
	if method == "" {
		method = "cash"
	}
	created, err := s.campaignRepo.CreateContribution(ctx, &domain.Contribution{
		UserID:     req.UserID,
		CampaignID: req.CampaignID,
		Amount:     req.Amount,
		Method:     method,
		RecordedBy: principal.UserID,
	})
	if err != nil {
		s.logger.Error("failed to record contribution", "campaignID", req.CampaignID, "error", err)
		return nil, err
	}
	s.logger.Info("contribution recorded", "campaignID", req.CampaignID, "userID", req.UserID, "recordedBy", principal.UserID)
	return created, nil
}

// MyContributions is the principal's personal giving history.
func (s *CampaignService) MyContributions(ctx context.Context, principal domain.Principal) ([]dtos.ContributionResponse, error) {
	return s.campaignRepo.FindUserContributions(ctx, principal.UserID)
}
