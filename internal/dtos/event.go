// File: internal/dtos/event.go
package dtos

import "time"

// EventResponse is one row of the events listing.
type EventResponse struct {
	ID           uint       `json:"id"`
	BranchID     uint       `json:"branch_id"`
	BranchName   string     `json:"branch_name"`
	GroupID      *uint      `json:"group_id"`
	GroupName    string     `json:"group_name,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartTime    *time.Time `json:"start_time"`
	Location     string     `json:"location"`
	MeetingURL   string     `json:"meeting_url"`
	MeetingNotes string     `json:"meeting_notes"`
	AISummary    string     `json:"ai_summary"`
}

type CreateEventRequest struct {
	BranchID    uint       `json:"branch_id" validate:"required,gt=0"`
	GroupID     *uint      `json:"group_id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	Location    string     `json:"location"`
	MeetingURL  string     `json:"meeting_url"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"required"`
}
