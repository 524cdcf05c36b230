// File: internal/domain/audit.go
package domain

import "time"

// AuditLog records a sensitive administrative action.
type AuditLog struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	Action     string    `json:"action" gorm:"not null"`
	TargetType string    `json:"target_type"`
	TargetID   uint      `json:"target_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"timestamp"`
}
