// File: internal/dtos/message.go
package dtos

import "time"

// Message is the wire form of a chat message, enriched with the sender
// display name so a push is self-contained: the receiver never needs a
// follow-up request to render it.
type Message struct {
	ID         uint      `json:"id"`
	GroupID    uint      `json:"group_id"`
	SenderID   uint      `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateMessageRequest is the payload for POST /api/messages. The
// sender is taken from the verified session, never from the body.
type CreateMessageRequest struct {
	GroupID uint   `json:"group_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

// CreateMessageResponse returns the store-assigned identity so the
// client can reconcile its optimistic entry.
type CreateMessageResponse struct {
	ID uint `json:"id"`
}
