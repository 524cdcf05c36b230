// File: internal/domain/volunteer.go
package domain

import "time"

const (
	NeedOpen   = "open"
	NeedClosed = "closed"
)

// VolunteerNeed asks for RequiredCount helpers in a role, usually tied
// to an event.
type VolunteerNeed struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	BranchID      uint       `json:"branch_id" gorm:"not null"`
	EventID       *uint      `json:"event_id"`
	RoleName      string     `json:"role_name" gorm:"not null"`
	Description   string     `json:"description"`
	RequiredCount int        `json:"required_count" gorm:"default:1"`
	Deadline      *time.Time `json:"deadline"`
	Status        string     `json:"status" gorm:"default:open"`
}

// VolunteerSignup is one user committing to a need.
type VolunteerSignup struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	NeedID     uint      `json:"need_id" gorm:"not null;index"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	SignedUpAt time.Time `json:"signed_up_at" gorm:"autoCreateTime"`
	Status     string    `json:"status" gorm:"default:confirmed"`
}
