// File: internal/dtos/campaign.go
package dtos

import "time"

// CampaignResponse adds running totals to a campaign row.
type CampaignResponse struct {
	ID               uint       `json:"id"`
	ChurchID         uint       `json:"church_id"`
	BranchID         *uint      `json:"branch_id"`
	GroupID          *uint      `json:"group_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	TargetAmount     float64    `json:"target_amount"`
	Deadline         *time.Time `json:"deadline"`
	VisibilityPolicy string     `json:"visibility_policy"`
	Status           string     `json:"status"`
	CurrentAmount    float64    `json:"current_amount"`
	ContributorCount int        `json:"contributor_count"`
}

// ContributionResponse is one ledger row, with the giver's name and,
// on the personal giving page, the campaign title.
type ContributionResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	CampaignID    uint      `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title,omitempty"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
}

type CreateContributionRequest struct {
	UserID     uint    `json:"user_id" validate:"required,gt=0"`
	CampaignID uint    `json:"campaign_id" validate:"required,gt=0"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Method     string  `json:"method"`
}
