// File: internal/dtos/admin.go
package dtos

import "time"

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=super_admin branch_admin group_leader member"`
}

type CreateBranchRequest struct {
	ChurchID uint   `json:"church_id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

type CreateInvitationRequest struct {
	BranchID *uint  `json:"branch_id"`
	Role     string `json:"role" validate:"required,oneof=branch_admin group_leader member"`
}

type InvitationResponse struct {
	ID          uint       `json:"id"`
	Code        string     `json:"code"`
	BranchID    *uint      `json:"branch_id"`
	BranchName  string     `json:"branch_name,omitempty"`
	Role        string     `json:"role"`
	CreatorName string     `json:"creator_name"`
	ExpiresAt   *time.Time `json:"expires_at"`
	UsedAt      *time.Time `json:"used_at"`
}

type AuditLogResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   uint      `json:"target_id"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}
