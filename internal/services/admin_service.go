// File: internal/services/admin_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/audit"
	"github.com/graceworks/churchos/internal/repository/branch"
	"github.com/graceworks/churchos/internal/repository/invitation"
	"github.com/graceworks/churchos/internal/repository/user"
)

var ErrUnknownRole = errors.New("unknown role")

const invitationTTL = 7 * 24 * time.Hour

// AdminService covers the administration surface: the member
// directory, branch management, role changes and invitations. Role
// changes produce audit rows.
type AdminService struct {
	userRepo       user.UserRepository
	branchRepo     branch.BranchRepository
	invitationRepo invitation.InvitationRepository
	auditRepo      audit.AuditRepository
	logger         Logger
}

func NewAdminService(
	userRepo user.UserRepository,
	branchRepo branch.BranchRepository,
	invitationRepo invitation.InvitationRepository,
	auditRepo audit.AuditRepository,
	logger Logger,
) (*AdminService, error) {
	if userRepo == nil || branchRepo == nil || invitationRepo == nil || auditRepo == nil {
		return nil, errors.New("all repositories are required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &AdminService{
		userRepo:       userRepo,
		branchRepo:     branchRepo,
		invitationRepo: invitationRepo,
		auditRepo:      auditRepo,
		logger:         logger,
	}, nil
}

// ListUsers is the member directory, each row with its branch name.
func (s *AdminService) ListUsers(ctx context.Context) ([]dtos.UserResponse, error) {
	return s.userRepo.FindAllWithBranch(ctx)
}

// CreateBranch opens a new branch under a church.
func (s *AdminService) CreateBranch(ctx context.Context, principal domain.Principal, req dtos.CreateBranchRequest) (*domain.Branch, error) {
	created, err := s.branchRepo.Create(ctx, &domain.Branch{
		ChurchID: req.ChurchID,
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
	})
	if err != nil {
		s.logger.Error("failed to create branch", "name", req.Name, "error", err)
		return nil, err
	}
	s.audit(ctx, principal, "branch_created", "branch", created.ID, created.Name)
	return created, nil
}

// ChangeRole updates a user's role and records who did it.
func (s *AdminService) ChangeRole(ctx context.Context, principal domain.Principal, userID uint, role string) error {
	if !domain.IsValidRole(role) {
		return ErrUnknownRole
	}
	target, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		s.logger.Error("failed to change role", "userID", userID, "role", role, "error", err)
		return err
	}
	s.audit(ctx, principal, "role_changed", "user", userID,
		fmt.Sprintf("%s -> %s", target.Role, role))
	s.logger.Info("role changed", "userID", userID, "from", target.Role, "to", role, "by", principal.UserID)
	return nil
}

// AuditLogs returns the most recent audit entries.
func (s *AdminService) AuditLogs(ctx context.Context) ([]dtos.AuditLogResponse, error) {
	return s.auditRepo.Recent(ctx, 100)
}

// CreateInvitation issues a single-use onboarding code for a role,
// optionally pinned to a branch.
func (s *AdminService) CreateInvitation(ctx context.Context, principal domain.Principal, req dtos.CreateInvitationRequest) (*domain.Invitation, error) {
	if !domain.IsValidRole(req.Role) || req.Role == domain.RoleSuperAdmin {
		return nil, ErrUnknownRole
	}
	expires := time.Now().Add(invitationTTL)
	inv := &domain.Invitation{
		Code:      NewInvitationCode(),
		BranchID:  req.BranchID,
		Role:      req.Role,
		CreatedBy: principal.UserID,
		ExpiresAt: &expires,
	}
	created, err := s.invitationRepo.Create(ctx, inv)
	if err != nil {
		s.logger.Error("failed to create invitation", "role", req.Role, "error", err)
		return nil, err
	}
	s.audit(ctx, principal, "invitation_created", "invitation", created.ID, created.Role)
	return created, nil
}

// ListInvitations returns every issued invitation, newest first.
func (s *AdminService) ListInvitations(ctx context.Context) ([]dtos.InvitationResponse, error) {
	return s.invitationRepo.FindAll(ctx)
}

// audit records an admin action. Audit writes never fail the action
// they describe.
func (s *AdminService) audit(ctx context.Context, principal domain.Principal, action, targetType string, targetID uint, details string) {
	err := s.auditRepo.Record(ctx, &domain.AuditLog{
		UserID:     principal.UserID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
	})
	if err != nil {
		s.logger.Error("audit write failed", "action", action, "error", err)
	}
}

// NewInvitationCode derives a 6 character uppercase code. Codes are
// short enough to share verbally; uniqueness is enforced by the
// invitations table.
func NewInvitationCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:6]
}
