// File: internal/services/directory_service.go
package services

import (
	"context"
	"errors"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/branch"
	"github.com/graceworks/churchos/internal/repository/campaign"
	"github.com/graceworks/churchos/internal/repository/stats"
	"github.com/graceworks/churchos/internal/repository/user"
)

// DirectoryService serves the identity and dashboard reads: current
// user, branches, headline stats and the giving comparison.
type DirectoryService struct {
	userRepo     user.UserRepository
	branchRepo   branch.BranchRepository
	statsRepo    stats.StatsRepository
	campaignRepo campaign.CampaignRepository
	logger       Logger
}

func NewDirectoryService(
	userRepo user.UserRepository,
	branchRepo branch.BranchRepository,
	statsRepo stats.StatsRepository,
	campaignRepo campaign.CampaignRepository,
	logger Logger,
) (*DirectoryService, error) {
	if userRepo == nil || branchRepo == nil || statsRepo == nil || campaignRepo == nil {
		return nil, errors.New("all repositories are required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &DirectoryService{
		userRepo:     userRepo,
		branchRepo:   branchRepo,
		statsRepo:    statsRepo,
		campaignRepo: campaignRepo,
		logger:       logger,
	}, nil
}

// Me loads the principal's full user record.
func (s *DirectoryService) Me(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, principal.UserID)
}

// Branches lists every branch for elevated principals, otherwise just
// the principal's own branch.
func (s *DirectoryService) Branches(ctx context.Context, principal domain.Principal) ([]domain.Branch, error) {
	if principal.Elevated() {
		return s.branchRepo.FindAll(ctx)
	}
	if principal.BranchID == nil {
		return []domain.Branch{}, nil
	}
	b, err := s.branchRepo.FindByID(ctx, *principal.BranchID)
	if err != nil {
		return nil, err
	}
	return []domain.Branch{*b}, nil
}

// Stats returns the dashboard counters, branch-filtered for
// non-elevated principals.
func (s *DirectoryService) Stats(ctx context.Context, principal domain.Principal) (*dtos.StatsResponse, error) {
	if principal.Elevated() {
		return s.statsRepo.Overview(ctx, nil)
	}
	return s.statsRepo.Overview(ctx, principal.BranchID)
}

// BranchComparison aggregates giving per branch against targets.
func (s *DirectoryService) BranchComparison(ctx context.Context) ([]dtos.BranchComparison, error) {
	return s.campaignRepo.BranchComparison(ctx)
}
