// File: internal/services/group_service.go
package services

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/group"
	"github.com/graceworks/churchos/internal/repository/message"
)

// GroupService reads groups and applies the membership gate to chat
// history: elevated roles read everything, members read their groups,
// everyone else gets the metadata with an empty message list.
type GroupService struct {
	groupRepo   group.GroupRepository
	messageRepo message.MessageRepository
	logger      Logger
}

func NewGroupService(groupRepo group.GroupRepository, messageRepo message.MessageRepository, logger Logger) (*GroupService, error) {
	if groupRepo == nil {
		return nil, errors.New("group repository is required")
	}
	if messageRepo == nil {
		return nil, errors.New("message repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &GroupService{groupRepo: groupRepo, messageRepo: messageRepo, logger: logger}, nil
}

// ListGroups returns every group for elevated principals, otherwise
// the principal's branch only.
func (s *GroupService) ListGroups(ctx context.Context, principal domain.Principal) ([]dtos.GroupSummary, error) {
	if principal.Elevated() {
		return s.groupRepo.FindAllScoped(ctx, nil)
	}
	return s.groupRepo.FindAllScoped(ctx, principal.BranchID)
}

// GetGroupDetail assembles the group page. Access to history fails
// soft: a non-member sees the metadata and roster with an empty
// message list, never an error, so the rest of the page still renders.
func (s *GroupService) GetGroupDetail(ctx context.Context, groupID uint, principal domain.Principal) (*dtos.GroupDetail, error) {
	grp, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members, err := s.groupRepo.Roster(ctx, groupID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.groupRepo.IsMember(ctx, principal.UserID, groupID)
	if err != nil {
		return nil, err
	}

	messages := []dtos.Message{}
	if principal.Elevated() || isMember {
		rows, err := s.messageRepo.FindByGroupID(ctx, groupID)
		if err != nil {
			return nil, err
		}
		messages = lo.Map(rows, func(row message.MessageWithSender, _ int) dtos.Message {
			return toMessageDTO(&row)
		})
	}

	return &dtos.GroupDetail{
		ID:          grp.ID,
		BranchID:    grp.BranchID,
		Name:        grp.Name,
		Type:        grp.Type,
		Description: grp.Description,
		MeetingURL:  grp.MeetingURL,
		Members:     members,
		Messages:    messages,
		IsMember:    isMember,
	}, nil
}
