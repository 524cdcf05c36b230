// File: internal/services/announcement_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/announcement"
)

var ErrBranchRequired = errors.New("branch announcements need a branch")

// AnnouncementService posts and lists announcements. Content is
// authored in markdown; listings carry the rendered HTML alongside the
// source so the dashboard does not render client-side.
type AnnouncementService struct {
	announcementRepo announcement.AnnouncementRepository
	markdown         goldmark.Markdown
	logger           Logger
}

func NewAnnouncementService(announcementRepo announcement.AnnouncementRepository, logger Logger) (*AnnouncementService, error) {
	if announcementRepo == nil {
		return nil, errors.New("announcement repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		markdown:         goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger:           logger,
	}, nil
}

// Post publishes an announcement from the principal. Branch-scoped
// announcements default to the sender's branch when none is given.
func (s *AnnouncementService) Post(ctx context.Context, principal domain.Principal, req dtos.CreateAnnouncementRequest) (*domain.Announcement, error) {
	a := &domain.Announcement{
		SenderID: principal.UserID,
		BranchID: req.BranchID,
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		Type:     req.Type,
	}
	if a.Type == domain.AnnouncementBranch && a.BranchID == nil {
		a.BranchID = principal.BranchID
	}
	if a.Type == domain.AnnouncementBranch && a.BranchID == nil {
		return nil, ErrBranchRequired
	}
	created, err := s.announcementRepo.Create(ctx, a)
	if err != nil {
		s.logger.Error("failed to post announcement", "title", req.Title, "error", err)
		return nil, err
	}
	s.logger.Info("announcement posted", "announcementID", created.ID, "type", created.Type)
	return created, nil
}

// List returns announcements visible to the principal, newest first,
// with the markdown rendered.
func (s *AnnouncementService) List(ctx context.Context, principal domain.Principal) ([]dtos.AnnouncementResponse, error) {
	rows, err := s.announcementRepo.FindScoped(ctx, principal.BranchID, principal.Elevated())
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r announcement.Row, _ int) dtos.AnnouncementResponse {
		return dtos.AnnouncementResponse{
			ID:          r.ID,
			SenderID:    r.SenderID,
			SenderName:  r.SenderName,
			BranchID:    r.BranchID,
			BranchName:  r.BranchName,
			Title:       r.Title,
			Content:     r.Content,
			ContentHTML: s.render(r.Content),
			Type:        r.Type,
			Timestamp:   r.CreatedAt,
		}
	}), nil
}

// render converts markdown to HTML. A failed conversion falls back to
// the raw source rather than dropping the announcement.
func (s *AnnouncementService) render(source string) string {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(source), &buf); err != nil {
		s.logger.Warn("markdown rendering failed", "error", err)
		return source
	}
	return buf.String()
}
