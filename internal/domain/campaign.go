// File: internal/domain/campaign.go
package domain

import "time"

// Campaign contribution visibility.
const (
	VisibilityPrivate      = "private"      // contributors see only their own rows
	VisibilityParticipants = "participants" // contributors see each other
	VisibilityFull         = "full"         // anyone may see the ledger
)

const (
	CampaignActive = "active"
	CampaignClosed = "closed"
)

// Campaign is a giving drive. Church-wide campaigns leave BranchID and
// GroupID nil.
type Campaign struct {
	ID               uint       `json:"id" gorm:"primarykey"`
	ChurchID         uint       `json:"church_id" gorm:"not null"`
	BranchID         *uint      `json:"branch_id"`
	GroupID          *uint      `json:"group_id"`
	Title            string     `json:"title" gorm:"not null"`
	Description      string     `json:"description"`
	TargetAmount     float64    `json:"target_amount"`
	Deadline         *time.Time `json:"deadline"`
	VisibilityPolicy string     `json:"visibility_policy" gorm:"default:private"`
	Status           string     `json:"status" gorm:"default:active"`
}

// Contribution is one recorded gift toward a campaign. RecordedBy is
// the staff user who keyed it in; it may differ from the giver.
type Contribution struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	CampaignID uint      `json:"campaign_id" gorm:"not null;index"`
	Amount     float64   `json:"amount" gorm:"not null"`
	Date       time.Time `json:"date" gorm:"autoCreateTime"`
	Method     string    `json:"method"`
	RecordedBy uint      `json:"recorded_by"`
	Status     string    `json:"status" gorm:"default:verified"`
}
