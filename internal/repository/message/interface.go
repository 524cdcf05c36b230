// File: internal/repository/message/interface.go
package message

import (
	"context"
	"time"

	"github.com/graceworks/churchos/internal/domain"
)

// MessageWithSender is a message row joined with the sender's display
// name, the shape both history reads and broadcast payloads use.
type MessageWithSender struct {
	ID         uint      `json:"id"`
	GroupID    uint      `json:"group_id"`
	SenderID   uint      `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"timestamp"`
}

// MessageRepository is the append-only chat log. There are deliberately
// no update or delete methods: messages are immutable once created.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByGroupID(ctx context.Context, groupID uint) ([]MessageWithSender, error)
	FindByIDWithSender(ctx context.Context, messageID uint) (*MessageWithSender, error)
	CountByGroupID(ctx context.Context, groupID uint) (int64, error)
}
