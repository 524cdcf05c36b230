// File: internal/dtos/group.go
package dtos

// GroupSummary is one row of the groups listing.
type GroupSummary struct {
	ID          uint   `json:"id"`
	BranchID    uint   `json:"branch_id"`
	BranchName  string `json:"branch_name"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	MeetingURL  string `json:"meeting_url"`
	MemberCount int    `json:"member_count"`
}

// GroupMemberInfo is one roster entry of a group detail response.
type GroupMemberInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	RoleInGroup string `json:"role_in_group"`
}

// GroupDetail is the full group page payload. Messages is empty (not
// an error) when the requester may not read the history.
type GroupDetail struct {
	ID          uint              `json:"id"`
	BranchID    uint              `json:"branch_id"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	MeetingURL  string            `json:"meeting_url"`
	Members     []GroupMemberInfo `json:"members"`
	Messages    []Message         `json:"messages"`
	IsMember    bool              `json:"is_member"`
}
