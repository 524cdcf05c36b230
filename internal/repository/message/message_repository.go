// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Create appends a message. The store assigns ID and CreatedAt; the
// caller must not set either.
func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if err := r.validateMessageInput(message); err != nil {
		log.Printf("[MessageRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		log.Printf("[MessageRepository] Database error during message creation for group ID %d: %v", message.GroupID, err)
		return nil, errors.New("database error creating message")
	}

	return message, nil
}

// FindByGroupID returns the full ordered history of a group, oldest
// first, with ID as the tie-break for equal timestamps.
func (r *gormMessageRepository) FindByGroupID(ctx context.Context, groupID uint) ([]MessageWithSender, error) {
	if groupID == 0 {
		return nil, errors.New("invalid group ID")
	}

	var messages []MessageWithSender
	err := r.db.WithContext(ctx).
		Table("messages").
		Select("messages.id, messages.group_id, messages.sender_id, users.name AS sender_name, messages.content, messages.created_at").
		Joins("JOIN users ON messages.sender_id = users.id").
		Where("messages.group_id = ?", groupID).
		Order("messages.created_at asc, messages.id asc").
		Scan(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error finding messages for group ID %d: %v", groupID, err)
		return nil, errors.New("database error fetching messages")
	}

	return messages, nil
}

// FindByIDWithSender loads one message joined with the sender name.
// The ingress handler uses it to build a self-contained broadcast payload.
func (r *gormMessageRepository) FindByIDWithSender(ctx context.Context, messageID uint) (*MessageWithSender, error) {
	if messageID == 0 {
		return nil, errors.New("invalid message ID")
	}

	var row MessageWithSender
	err := r.db.WithContext(ctx).
		Table("messages").
		Select("messages.id, messages.group_id, messages.sender_id, users.name AS sender_name, messages.content, messages.created_at").
		Joins("JOIN users ON messages.sender_id = users.id").
		Where("messages.id = ?", messageID).
		Scan(&row).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error finding message ID %d: %v", messageID, err)
		return nil, errors.New("database error fetching message")
	}
	if row.ID == 0 {
		return nil, ErrMessageNotFound
	}

	return &row, nil
}

func (r *gormMessageRepository) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("group_id = ?", groupID).Count(&total).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for group ID %d: %v", groupID, err)
		return 0, errors.New("database error counting messages")
	}
	return total, nil
}

func (r *gormMessageRepository) validateMessageInput(message *domain.Message) error {
	if message == nil {
		return errors.New("message cannot be nil")
	}
	if message.GroupID == 0 {
		return errors.New("group ID is required")
	}
	if message.SenderID == 0 {
		return errors.New("sender ID is required")
	}
	if strings.TrimSpace(message.Content) == "" {
		return errors.New("message content cannot be empty")
	}
	return nil
}
