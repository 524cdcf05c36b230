// File: internal/services/volunteer_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/volunteer"
)

// VolunteerService manages serving opportunities and signups.
type VolunteerService struct {
	volunteerRepo volunteer.VolunteerRepository
	logger        Logger
}

func NewVolunteerService(volunteerRepo volunteer.VolunteerRepository, logger Logger) (*VolunteerService, error) {
	if volunteerRepo == nil {
		return nil, errors.New("volunteer repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &VolunteerService{volunteerRepo: volunteerRepo, logger: logger}, nil
}

// CreateNeed publishes a serving opportunity.
func (s *VolunteerService) CreateNeed(ctx context.Context, principal domain.Principal, req dtos.CreateNeedRequest) (*domain.VolunteerNeed, error) {
	required := req.RequiredCount
	if required < 1 {
		required = 1
	}
	need := &domain.VolunteerNeed{
		BranchID:      req.BranchID,
		EventID:       req.EventID,
		RoleName:      strings.TrimSpace(req.RoleName),
		Description:   strings.TrimSpace(req.Description),
		RequiredCount: required,
		Deadline:      req.Deadline,
		Status:        domain.NeedOpen,
	}
	created, err := s.volunteerRepo.CreateNeed(ctx, need)
	if err != nil {
		s.logger.Error("failed to create volunteer need", "role", req.RoleName, "error", err)
		return nil, err
	}
	s.logger.Info("volunteer need created", "needID", created.ID, "createdBy", principal.UserID)
	return created, nil
}

// OpenNeeds lists a branch's open needs with signup progress. A
// non-elevated principal always sees their own branch.
func (s *VolunteerService) OpenNeeds(ctx context.Context, principal domain.Principal, branchID uint) ([]dtos.VolunteerNeedResponse, error) {
	if !principal.Elevated() && principal.BranchID != nil {
		branchID = *principal.BranchID
	}
	return s.volunteerRepo.OpenNeedsByBranch(ctx, branchID)
}

// SignUp commits the principal to a need.
func (s *VolunteerService) SignUp(ctx context.Context, principal domain.Principal, needID uint) (*domain.VolunteerSignup, error) {
	created, err := s.volunteerRepo.CreateSignup(ctx, &domain.VolunteerSignup{
		NeedID: needID,
		UserID: principal.UserID,
	})
	if err != nil {
		s.logger.Error("failed to record signup", "needID", needID, "userID", principal.UserID, "error", err)
		return nil, err
	}
	s.logger.Info("volunteer signup recorded", "needID", needID, "userID", principal.UserID)
	return created, nil
}

// MySignups lists the principal's commitments.
func (s *VolunteerService) MySignups(ctx context.Context, principal domain.Principal) ([]dtos.VolunteerSignupResponse, error) {
	return s.volunteerRepo.FindUserSignups(ctx, principal.UserID)
}
