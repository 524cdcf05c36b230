// File: internal/domain/prayer.go
package domain

import "time"

// PrayerRequest is a request shared with the congregation. Anonymous
// requests keep the author row for accountability but never expose the
// author's name through the API.
type PrayerRequest struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      *uint     `json:"user_id"`
	BranchID    uint      `json:"branch_id" gorm:"not null"`
	Content     string    `json:"content" gorm:"not null"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"timestamp"`
}
