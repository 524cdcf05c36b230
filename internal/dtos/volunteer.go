// File: internal/dtos/volunteer.go
package dtos

import "time"

// VolunteerNeedResponse is one open need with its signup progress.
type VolunteerNeedResponse struct {
	ID            uint       `json:"id"`
	BranchID      uint       `json:"branch_id"`
	EventID       *uint      `json:"event_id"`
	EventTitle    string     `json:"event_title,omitempty"`
	EventTime     *time.Time `json:"event_time,omitempty"`
	RoleName      string     `json:"role_name"`
	Description   string     `json:"description"`
	RequiredCount int        `json:"required_count"`
	CurrentCount  int        `json:"current_count"`
	Deadline      *time.Time `json:"deadline"`
	Status        string     `json:"status"`
}

// VolunteerSignupResponse is one row of a user's personal signup list.
type VolunteerSignupResponse struct {
	ID         uint       `json:"id"`
	NeedID     uint       `json:"need_id"`
	RoleName   string     `json:"role_name"`
	EventTitle string     `json:"event_title,omitempty"`
	EventTime  *time.Time `json:"event_time,omitempty"`
	SignedUpAt time.Time  `json:"signed_up_at"`
	Status     string     `json:"status"`
}

type CreateNeedRequest struct {
	BranchID      uint       `json:"branch_id" validate:"required,gt=0"`
	EventID       *uint      `json:"event_id"`
	RoleName      string     `json:"role_name" validate:"required"`
	Description   string     `json:"description"`
	RequiredCount int        `json:"required_count" validate:"gte=1"`
	Deadline      *time.Time `json:"deadline"`
}

type CreateSignupRequest struct {
	NeedID uint `json:"need_id" validate:"required,gt=0"`
}
