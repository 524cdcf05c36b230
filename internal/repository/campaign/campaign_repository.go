// File: internal/repository/campaign/campaign_repository.go
package campaign

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type gormCampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &gormCampaignRepository{db: db}
}

func (r *gormCampaignRepository) FindByID(ctx context.Context, campaignID uint) (*domain.Campaign, error) {
	if campaignID == 0 {
		return nil, errors.New("invalid campaign ID")
	}

	var campaign domain.Campaign
	err := r.db.WithContext(ctx).First(&campaign, campaignID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		log.Printf("[CampaignRepository] Database error finding campaign ID %d: %v", campaignID, err)
		return nil, errors.New("database error fetching campaign")
	}
	return &campaign, nil
}

func (r *gormCampaignRepository) FindAllWithTotals(ctx context.Context) ([]dtos.CampaignResponse, error) {
	var campaigns []dtos.CampaignResponse
	err := r.db.WithContext(ctx).
		Table("campaigns").
		Select(`campaigns.id, campaigns.church_id, campaigns.branch_id, campaigns.group_id,
			campaigns.title, campaigns.description, campaigns.target_amount, campaigns.deadline,
			campaigns.visibility_policy, campaigns.status,
			COALESCE((SELECT SUM(amount) FROM contributions WHERE campaign_id = campaigns.id), 0) AS current_amount,
			(SELECT COUNT(DISTINCT user_id) FROM contributions WHERE campaign_id = campaigns.id) AS contributor_count`).
		Order("campaigns.status asc, campaigns.deadline asc").
		Scan(&campaigns).Error
	if err != nil {
		log.Printf("[CampaignRepository] Database error listing campaigns: %v", err)
		return nil, errors.New("database error listing campaigns")
	}
	return campaigns, nil
}

func (r *gormCampaignRepository) Contributions(ctx context.Context, campaignID uint, restrictToUser *uint) ([]dtos.ContributionResponse, error) {
	if campaignID == 0 {
		return nil, errors.New("invalid campaign ID")
	}

	query := r.db.WithContext(ctx).
		Table("contributions").
		Select(`contributions.id, contributions.user_id, users.name AS user_name,
			contributions.campaign_id, contributions.amount, contributions.date,
			contributions.method, contributions.status`).
		Joins("JOIN users ON contributions.user_id = users.id").
		Where("contributions.campaign_id = ?", campaignID)
	if restrictToUser != nil {
		query = query.Where("contributions.user_id = ?", *restrictToUser)
	}

	var rows []dtos.ContributionResponse
	if err := query.Order("contributions.date desc").Scan(&rows).Error; err != nil {
		log.Printf("[CampaignRepository] Database error listing contributions for campaign ID %d: %v", campaignID, err)
		return nil, errors.New("database error listing contributions")
	}
	return rows, nil
}

func (r *gormCampaignRepository) CreateContribution(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
	if c == nil || c.UserID == 0 || c.CampaignID == 0 {
		return nil, errors.New("user ID and campaign ID are required")
	}
	if c.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		log.Printf("[CampaignRepository] Database error recording contribution for campaign ID %d: %v", c.CampaignID, err)
		return nil, errors.New("database error recording contribution")
	}
	return c, nil
}

func (r *gormCampaignRepository) FindUserContributions(ctx context.Context, userID uint) ([]dtos.ContributionResponse, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var rows []dtos.ContributionResponse
	err := r.db.WithContext(ctx).
		Table("contributions").
		Select(`contributions.id, contributions.user_id, contributions.campaign_id,
			campaigns.title AS campaign_title, contributions.amount, contributions.date,
			contributions.method, contributions.status`).
		Joins("JOIN campaigns ON contributions.campaign_id = campaigns.id").
		Where("contributions.user_id = ?", userID).
		Order("contributions.date desc").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[CampaignRepository] Database error listing contributions for user ID %d: %v", userID, err)
		return nil, errors.New("database error listing contributions")
	}
	return rows, nil
}

func (r *gormCampaignRepository) BranchComparison(ctx context.Context) ([]dtos.BranchComparison, error) {
	var rows []dtos.BranchComparison
	err := r.db.WithContext(ctx).
		Table("branches").
		Select(`branches.name AS branch_name,
			COALESCE(SUM(contributions.amount), 0) AS total_contributed,
			COALESCE((SELECT SUM(target_amount) FROM campaigns WHERE campaigns.branch_id = branches.id OR campaigns.branch_id IS NULL), 0) AS total_target`).
		Joins("LEFT JOIN users ON users.branch_id = branches.id").
		Joins("LEFT JOIN contributions ON contributions.user_id = users.id").
		Group("branches.id, branches.name").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[CampaignRepository] Database error computing branch comparison: %v", err)
		return nil, errors.New("database error computing branch comparison")
	}
	return rows, nil
}
