// File: internal/domain/announcement.go
package domain

import "time"

// Announcement reach.
const (
	AnnouncementChurch = "church" // visible to every branch
	AnnouncementBranch = "branch" // scoped to one branch
)

type Announcement struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	SenderID  uint      `json:"sender_id" gorm:"not null"`
	BranchID  *uint     `json:"branch_id"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"`
	CreatedAt time.Time `json:"timestamp"`
}
