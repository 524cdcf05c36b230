// File: internal/repository/invitation/invitation_repository.go
package invitation

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
)

var ErrInvitationNotFound = errors.New("invitation not found")

type gormInvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &gormInvitationRepository{db: db}
}

func (r *gormInvitationRepository) Create(ctx context.Context, invitation *domain.Invitation) (*domain.Invitation, error) {
	if invitation == nil || invitation.Code == "" || invitation.CreatedBy == 0 {
		return nil, errors.New("code and creator are required")
	}
	if !domain.IsValidRole(invitation.Role) {
		return nil, errors.New("unknown role: " + invitation.Role)
	}

	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		log.Printf("[InvitationRepository] Database error creating invitation: %v", err)
		return nil, errors.New("database error creating invitation")
	}
	return invitation, nil
}

func (r *gormInvitationRepository) FindAll(ctx context.Context) ([]dtos.InvitationResponse, error) {
	var invites []dtos.InvitationResponse
	err := r.db.WithContext(ctx).
		Table("invitations").
		Select(`invitations.id, invitations.code, invitations.branch_id, branches.name AS branch_name,
			invitations.role, users.name AS creator_name, invitations.expires_at, invitations.used_at`).
		Joins("LEFT JOIN branches ON invitations.branch_id = branches.id").
		Joins("JOIN users ON invitations.created_by = users.id").
		Order("invitations.id desc").
		Scan(&invites).Error
	if err != nil {
		log.Printf("[InvitationRepository] Database error listing invitations: %v", err)
		return nil, errors.New("database error listing invitations")
	}
	return invites, nil
}

func (r *gormInvitationRepository) FindByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	if code == "" {
		return nil, errors.New("code is required")
	}

	var invitation domain.Invitation
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		log.Printf("[InvitationRepository] Database error finding invitation by code: %v", err)
		return nil, errors.New("database error fetching invitation")
	}
	return &invitation, nil
}

func (r *gormInvitationRepository) MarkUsed(ctx context.Context, invitationID uint) error {
	if invitationID == 0 {
		return errors.New("invalid invitation ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Invitation{}).
		Where("id = ? AND used_at IS NULL", invitationID).
		Update("used_at", time.Now())
	if result.Error != nil {
		log.Printf("[InvitationRepository] Database error marking invitation ID %d used: %v", invitationID, result.Error)
		return errors.New("database error updating invitation")
	}
	if result.RowsAffected == 0 {
		return errors.New("invitation already used or missing")
	}
	return nil
}
