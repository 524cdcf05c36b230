// File: internal/services/ai_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/graceworks/churchos/internal/repository/event"
	"github.com/graceworks/churchos/internal/services/ai"
)

var (
	ErrAIUnavailable  = errors.New("AI features are not configured")
	ErrNoMeetingNotes = errors.New("event has no meeting notes to summarize")
)

// AIService backs the generative features: announcement drafts,
// ministry insights and meeting-note summaries. It is constructed with
// a nil provider when no API key is configured; every method then
// reports ErrAIUnavailable instead of touching the network.
type AIService struct {
	provider  ai.CompletionProvider
	eventRepo event.EventRepository
	logger    Logger
}

func NewAIService(provider ai.CompletionProvider, eventRepo event.EventRepository, logger Logger) (*AIService, error) {
	if eventRepo == nil {
		return nil, errors.New("event repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &AIService{provider: provider, eventRepo: eventRepo, logger: logger}, nil
}

// Available reports whether a provider is configured.
func (s *AIService) Available() bool {
	return s.provider != nil
}

// DraftAnnouncement writes a church announcement from bullet points.
func (s *AIService) DraftAnnouncement(ctx context.Context, details string) (string, error) {
	if s.provider == nil {
		return "", ErrAIUnavailable
	}
	prompt := fmt.Sprintf(
		"Write a warm, concise church announcement in markdown based on these details. "+
			"Keep it under 150 words and do not invent facts.\n\nDetails:\n%s",
		strings.TrimSpace(details))
	return s.provider.GetCompletion(ctx, prompt)
}

// Insights turns raw dashboard data into a short narrative summary.
func (s *AIService) Insights(ctx context.Context, data string) (string, error) {
	if s.provider == nil {
		return "", ErrAIUnavailable
	}
	prompt := fmt.Sprintf(
		"You are an assistant for church staff. Summarize the following ministry data "+
			"in 3-5 plain-language bullet points, highlighting trends worth attention.\n\nData:\n%s",
		strings.TrimSpace(data))
	return s.provider.GetCompletion(ctx, prompt)
}

// SummarizeMeeting condenses an event's meeting notes and stores the
// summary on the event.
func (s *AIService) SummarizeMeeting(ctx context.Context, eventID uint) (string, error) {
	if s.provider == nil {
		return "", ErrAIUnavailable
	}
	ev, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(ev.MeetingNotes) == "" {
		return "", ErrNoMeetingNotes
	}
	prompt := fmt.Sprintf(
		"Summarize these meeting notes into key decisions and action items, "+
			"as a short markdown list.\n\nNotes:\n%s", ev.MeetingNotes)
	summary, err := s.provider.GetCompletion(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := s.eventRepo.UpdateAISummary(ctx, eventID, summary); err != nil {
		s.logger.Error("failed to store meeting summary", "eventID", eventID, "error", err)
		return "", err
	}
	s.logger.Info("meeting summary stored", "eventID", eventID)
	return summary, nil
}
