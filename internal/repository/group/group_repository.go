// File: internal/repository/group/group_repository.go
package group

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

var ErrGroupNotFound = errors.New("group not found")

type gormGroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &gormGroupRepository{db: db}
}

func (r *gormGroupRepository) FindByID(ctx context.Context, groupID uint) (*domain.Group, error) {
	if groupID == 0 {
		return nil, errors.New("invalid group ID")
	}

	var group domain.Group
	err := r.db.WithContext(ctx).First(&group, groupID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		log.Printf("[GroupRepository] Database error finding group ID %d: %v", groupID, err)
		return nil, errors.New("database error fetching group")
	}
	return &group, nil
}

func (r *gormGroupRepository) FindAllScoped(ctx context.Context, branchID *uint) ([]dtos.GroupSummary, error) {
	query := r.db.WithContext(ctx).
		Table("groups").
		Select(`groups.id, groups.branch_id, branches.name AS branch_name, groups.name, groups.type,
			groups.description, groups.meeting_url,
			(SELECT COUNT(*) FROM group_members WHERE group_members.group_id = groups.id) AS member_count`).
		Joins("JOIN branches ON groups.branch_id = branches.id")
	if branchID != nil {
		query = query.Where("groups.branch_id = ?", *branchID)
	}

	var groups []dtos.GroupSummary
	if err := query.Scan(&groups).Error; err != nil {
		log.Printf("[GroupRepository] Database error listing groups: %v", err)
		return nil, errors.New("database error listing groups")
	}
	return groups, nil
}

func (r *gormGroupRepository) Roster(ctx context.Context, groupID uint) ([]dtos.GroupMemberInfo, error) {
	if groupID == 0 {
		return nil, errors.New("invalid group ID")
	}

	var members []dtos.GroupMemberInfo
	err := r.db.WithContext(ctx).
		Table("group_members").
		Select("users.id, users.name, users.role, group_members.role_in_group").
		Joins("JOIN users ON group_members.user_id = users.id").
		Where("group_members.group_id = ?", groupID).
		Scan(&members).Error
	if err != nil {
		log.Printf("[GroupRepository] Database error loading roster for group ID %d: %v", groupID, err)
		return nil, errors.New("database error loading roster")
	}
	return members, nil
}

// IsMember answers the membership question behind history gating.
// Absence is not an error; it simply yields false.
func (r *gormGroupRepository) IsMember(ctx context.Context, userID, groupID uint) (bool, error) {
	if userID == 0 || groupID == 0 {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GroupMember{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Count(&count).Error
	if err != nil {
		log.Printf("[GroupRepository] Database error checking membership user=%d group=%d: %v", userID, groupID, err)
		return false, errors.New("database error checking membership")
	}
	return count > 0, nil
}

func (r *gormGroupRepository) AddMember(ctx context.Context, member *domain.GroupMember) error {
	if member == nil || member.UserID == 0 || member.GroupID == 0 {
		return errors.New("user ID and group ID are required")
	}

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		log.Printf("[GroupRepository] Database error adding member user=%d group=%d: %v", member.UserID, member.GroupID, err)
		return errors.New("database error adding member")
	}
	return nil
}
