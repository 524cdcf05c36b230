// File: internal/repository/campaign/interface.go
package campaign

import (
	"context"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

type CampaignRepository interface {
	FindByID(ctx context.Context, campaignID uint) (*domain.Campaign, error)
	// FindAllWithTotals lists campaigns with their running totals,
	// active first, nearest deadline first.
	FindAllWithTotals(ctx context.Context) ([]dtos.CampaignResponse, error)
	// Contributions returns a campaign's ledger, newest first. When
	// restrictToUser is non-nil only that user's rows are returned
	// (private visibility policy).
	Contributions(ctx context.Context, campaignID uint, restrictToUser *uint) ([]dtos.ContributionResponse, error)
	CreateContribution(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error)
	FindUserContributions(ctx context.Context, userID uint) ([]dtos.ContributionResponse, error)
	// BranchComparison aggregates giving per branch against targets.
	BranchComparison(ctx context.Context) ([]dtos.BranchComparison, error)
}
