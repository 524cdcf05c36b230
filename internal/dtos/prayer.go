// File: internal/dtos/prayer.go
package dtos

import "time"

// PrayerRequestResponse hides the author of anonymous requests.
type PrayerRequestResponse struct {
	ID          uint      `json:"id"`
	UserID      *uint     `json:"user_id,omitempty"`
	UserName    string    `json:"user_name,omitempty"`
	BranchID    uint      `json:"branch_id"`
	Content     string    `json:"content"`
	IsAnonymous bool      `json:"is_anonymous"`
	Timestamp   time.Time `json:"timestamp"`
}

type CreatePrayerRequest struct {
	Content     string `json:"content" validate:"required"`
	IsAnonymous bool   `json:"is_anonymous"`
}
