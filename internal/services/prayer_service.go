// File: internal/services/prayer_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/prayer"
)

var ErrEmptyPrayer = errors.New("prayer request content cannot be empty")

// PrayerService shares prayer requests with the congregation.
// Anonymous requests keep the author row in storage but the service
// strips the identity before anything leaves it.
type PrayerService struct {
	prayerRepo prayer.PrayerRepository
	logger     Logger
}

func NewPrayerService(prayerRepo prayer.PrayerRepository, logger Logger) (*PrayerService, error) {
	if prayerRepo == nil {
		return nil, errors.New("prayer repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &PrayerService{prayerRepo: prayerRepo, logger: logger}, nil
}

// Post submits a prayer request from the principal.
func (s *PrayerService) Post(ctx context.Context, principal domain.Principal, req dtos.CreatePrayerRequest) (*domain.PrayerRequest, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyPrayer
	}
	var branchID uint
	if principal.BranchID != nil {
		branchID = *principal.BranchID
	}
	userID := principal.UserID
	request := &domain.PrayerRequest{
		UserID:      &userID,
		BranchID:    branchID,
		Content:     content,
		IsAnonymous: req.IsAnonymous,
	}
	created, err := s.prayerRepo.Create(ctx, request)
	if err != nil {
		s.logger.Error("failed to post prayer request", "userID", principal.UserID, "error", err)
		return nil, err
	}
	if created.IsAnonymous {
		created.UserID = nil
	}
	return created, nil
}

// List returns every prayer request, newest first, with anonymous
// authors blanked.
func (s *PrayerService) List(ctx context.Context) ([]dtos.PrayerRequestResponse, error) {
	rows, err := s.prayerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r prayer.Row, _ int) dtos.PrayerRequestResponse {
		resp := dtos.PrayerRequestResponse{
			ID:          r.ID,
			UserID:      r.UserID,
			UserName:    r.UserName,
			BranchID:    r.BranchID,
			Content:     r.Content,
			IsAnonymous: r.IsAnonymous,
			Timestamp:   r.CreatedAt,
		}
		if r.IsAnonymous {
			resp.UserID = nil
			resp.UserName = ""
		}
		return resp
	}), nil
}
