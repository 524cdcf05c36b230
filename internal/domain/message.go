// File: internal/domain/message.go
package domain

import "time"

// Message is one persisted chat entry in a group's history. Messages
// are immutable once created: there is no edit or delete path, and the
// store never reorders them. Ordering within a group is CreatedAt
// ascending with ID as the tie-break.
type Message struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	GroupID   uint      `json:"group_id" gorm:"not null;index"`
	SenderID  uint      `json:"sender_id" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"timestamp"`
}
