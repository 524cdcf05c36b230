// File: internal/domain/event.go
package domain

import "time"

// Event is a scheduled gathering. Branch-wide events leave GroupID nil;
// group events are visible to that group's members regardless of branch.
type Event struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	BranchID     uint       `json:"branch_id" gorm:"not null"`
	GroupID      *uint      `json:"group_id"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description"`
	StartTime    *time.Time `json:"start_time"`
	Location     string     `json:"location"`
	MeetingURL   string     `json:"meeting_url"`
	MeetingNotes string     `json:"meeting_notes"`
	AISummary    string     `json:"ai_summary"`
}

// MeetingAttendance records that a user joined an event's online meeting.
type MeetingAttendance struct {
	ID       uint      `json:"id" gorm:"primarykey"`
	EventID  uint      `json:"event_id" gorm:"not null;index"`
	UserID   uint      `json:"user_id" gorm:"not null"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}
