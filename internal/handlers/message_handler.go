// File: internal/handlers/message_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/services"
)

// MessageHandler is the chat ingress. The sender is always the
// verified principal; the body only chooses the group and the text.
type MessageHandler struct {
	chatService *services.ChatService
}

func NewMessageHandler(chatService *services.ChatService) *MessageHandler {
	return &MessageHandler{chatService: chatService}
}

// Create handles POST /api/messages. The message is persisted first;
// the broadcast to attached group connections happens before the
// response but its delivery is best-effort.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id, err := h.chatService.PostMessage(r.Context(), req.GroupID, principal.UserID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyContent), errors.Is(err, services.ErrInvalidGroup):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[MessageHandler] Error posting message to group %d: %v", req.GroupID, err)
			writeError(w, http.StatusInternalServerError, "Failed to post message")
		}
		return
	}

	writeJSON(w, http.StatusCreated, dtos.CreateMessageResponse{ID: id})
}
