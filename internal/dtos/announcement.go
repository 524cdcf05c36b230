// File: internal/dtos/announcement.go
package dtos

import "time"

// AnnouncementResponse includes the markdown source and the rendered
// HTML the dashboard displays.
type AnnouncementResponse struct {
	ID          uint      `json:"id"`
	SenderID    uint      `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	BranchID    *uint     `json:"branch_id"`
	BranchName  string    `json:"branch_name,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
}

type CreateAnnouncementRequest struct {
	BranchID *uint  `json:"branch_id"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=church branch"`
}
