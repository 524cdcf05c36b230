// File: internal/domain/group.go
package domain

// Group is a ministry or small group within a branch. It is the scoping
// unit for both membership and chat.
type Group struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	BranchID    uint   `json:"branch_id" gorm:"not null"`
	Name        string `json:"name" gorm:"not null"`
	Type        string `json:"type"`
	Description string `json:"description"`
	MeetingURL  string `json:"meeting_url"`
}

// GroupMember links a user to a group, optionally with a role label
// local to the group ("Leader", "Vocalist", ...).
type GroupMember struct {
	UserID      uint   `json:"user_id" gorm:"primaryKey"`
	GroupID     uint   `json:"group_id" gorm:"primaryKey"`
	RoleInGroup string `json:"role_in_group"`
}
