// File: internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/message"
)

// EventNewMessage is the discriminant of a live-channel message push.
const EventNewMessage = "NEW_MESSAGE"

var (
	ErrEmptyContent = errors.New("message content cannot be empty")
	ErrInvalidGroup = errors.New("a valid group is required")
)

// MessageEvent is the self-contained unit pushed over the live channel.
type MessageEvent struct {
	Type    string       `json:"type"`
	Message dtos.Message `json:"message"`
}

// Broadcaster fans an event out to every live connection of a group.
// Satisfied by realtime.Dispatcher; faked in tests.
type Broadcaster interface {
	Broadcast(groupID uint, event interface{}) int
}

// ChatService is the message ingress: the single place where the
// persist-then-notify ordering is guaranteed.
type ChatService struct {
	messageRepo message.MessageRepository
	broadcaster Broadcaster
	logger      Logger
}

func NewChatService(messageRepo message.MessageRepository, broadcaster Broadcaster, logger Logger) (*ChatService, error) {
	if messageRepo == nil {
		return nil, errors.New("message repository is required")
	}
	if broadcaster == nil {
		return nil, errors.New("broadcaster is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}
	return &ChatService{
		messageRepo: messageRepo,
		broadcaster: broadcaster,
		logger:      logger,
	}, nil
}

// PostMessage persists a message and then notifies the group's live
// connections. The store insert fully completes, and the enriched row
// (store-assigned identity, timestamp, sender name) is read back,
// before any push goes out, so a client can always fetch what it was
// pushed. The returned identity does not depend on broadcast success.
func (s *ChatService) PostMessage(ctx context.Context, groupID, senderID uint, content string) (uint, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, ErrEmptyContent
	}
	if groupID == 0 {
		return 0, ErrInvalidGroup
	}

	created, err := s.messageRepo.Create(ctx, &domain.Message{
		GroupID:  groupID,
		SenderID: senderID,
		Content:  content,
	})
	if err != nil {
		s.logger.Error("message insert failed", "group_id", groupID, "sender_id", senderID, "error", err)
		return 0, err
	}

	enriched, err := s.messageRepo.FindByIDWithSender(ctx, created.ID)
	if err != nil {
		// The row exists; only the push is lost. Readers will see it on
		// their next history fetch.
		s.logger.Error("message enrichment failed, skipping broadcast",
			"message_id", created.ID, "group_id", groupID, "error", err)
		return created.ID, nil
	}

	delivered := s.broadcaster.Broadcast(groupID, MessageEvent{
		Type:    EventNewMessage,
		Message: toMessageDTO(enriched),
	})
	s.logger.Debug("message broadcast",
		"message_id", created.ID, "group_id", groupID, "delivered", delivered)

	return created.ID, nil
}

func toMessageDTO(row *message.MessageWithSender) dtos.Message {
	return dtos.Message{
		ID:         row.ID,
		GroupID:    row.GroupID,
		SenderID:   row.SenderID,
		SenderName: row.SenderName,
		Content:    row.Content,
		Timestamp:  row.CreatedAt,
	}
}
