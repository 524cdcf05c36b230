// File: internal/services/event_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/event"
)

var ErrEmptyNotes = errors.New("meeting notes cannot be empty")

// EventService covers the calendar: scheduling, visibility-scoped
// listing, meeting attendance and leader meeting notes.
type EventService struct {
	eventRepo event.EventRepository
	logger    Logger
}

func NewEventService(eventRepo event.EventRepository, logger Logger) (*EventService, error) {
	if eventRepo == nil {
		return nil, errors.New("event repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &EventService{eventRepo: eventRepo, logger: logger}, nil
}

// ListEvents returns events the principal may see. Elevated roles get
// everything; members get their branch's events, church-wide events and
// events of groups they belong to.
func (s *EventService) ListEvents(ctx context.Context, principal domain.Principal) ([]dtos.EventResponse, error) {
	return s.eventRepo.FindScoped(ctx, principal.BranchID, principal.UserID, principal.Elevated())
}

// CreateEvent schedules a new event.
func (s *EventService) CreateEvent(ctx context.Context, principal domain.Principal, req dtos.CreateEventRequest) (*domain.Event, error) {
	ev := &domain.Event{
		BranchID:    req.BranchID,
		GroupID:     req.GroupID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		StartTime:   req.StartTime,
		Location:    strings.TrimSpace(req.Location),
		MeetingURL:  strings.TrimSpace(req.MeetingURL),
	}
	created, err := s.eventRepo.Create(ctx, ev)
	if err != nil {
		s.logger.Error("failed to create event", "title", req.Title, "error", err)
		return nil, err
	}
	s.logger.Info("event created", "eventID", created.ID, "createdBy", principal.UserID)
	return created, nil
}

// RecordAttendance marks the caller as having joined an event's meeting.
func (s *EventService) RecordAttendance(ctx context.Context, principal domain.Principal, eventID uint) error {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return err
	}
	return s.eventRepo.RecordAttendance(ctx, eventID, principal.UserID)
}

// SaveNotes stores leader meeting notes on an event.
func (s *EventService) SaveNotes(ctx context.Context, principal domain.Principal, eventID uint, notes string) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return ErrEmptyNotes
	}
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return err
	}
	if err := s.eventRepo.UpdateNotes(ctx, eventID, notes); err != nil {
		return err
	}
	s.logger.Info("meeting notes saved", "eventID", eventID, "userID", principal.UserID)
	return nil
}
