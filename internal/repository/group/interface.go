// File: internal/repository/group/interface.go
package group

import (
	"context"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

// GroupRepository reads groups and answers membership questions. It is
// the membership authority for chat history gating: IsMember decides
// whether a non-elevated user may read a group's messages.
type GroupRepository interface {
	FindByID(ctx context.Context, groupID uint) (*domain.Group, error)
	// FindAllScoped lists all groups when branchID is nil, otherwise
	// only the given branch's groups.
	FindAllScoped(ctx context.Context, branchID *uint) ([]dtos.GroupSummary, error)
	Roster(ctx context.Context, groupID uint) ([]dtos.GroupMemberInfo, error)
	IsMember(ctx context.Context, userID, groupID uint) (bool, error)
	AddMember(ctx context.Context, member *domain.GroupMember) error
}
