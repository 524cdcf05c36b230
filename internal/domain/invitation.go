// File: internal/domain/invitation.go
package domain

import "time"

// Invitation is a one-time onboarding code created by an admin. The
// code is short and human-readable so it can be shared verbally.
type Invitation struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Code      string     `json:"code" gorm:"uniqueIndex;not null"`
	BranchID  *uint      `json:"branch_id"`
	Role      string     `json:"role" gorm:"not null"`
	CreatedBy uint       `json:"created_by" gorm:"not null"`
	ExpiresAt *time.Time `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
}

// Usable reports whether the invitation can still be redeemed at t.
func (i *Invitation) Usable(t time.Time) bool {
	if i.UsedAt != nil {
		return false
	}
	if i.ExpiresAt != nil && t.After(*i.ExpiresAt) {
		return false
	}
	return true
}
