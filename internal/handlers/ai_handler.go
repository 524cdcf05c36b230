// File: internal/handlers/ai_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/services"
)

type AIHandler struct {
	aiService *services.AIService
}

func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// DraftAnnouncement handles POST /api/ai/announcement-draft.
func (h *AIHandler) DraftAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req dtos.AnnouncementDraftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	text, err := h.aiService.DraftAnnouncement(r.Context(), req.Details)
	if err != nil {
		h.writeAIError(w, "draft announcement", err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.AITextResponse{Text: text})
}

// Insights handles POST /api/ai/insights.
func (h *AIHandler) Insights(w http.ResponseWriter, r *http.Request) {
	var req dtos.InsightsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	text, err := h.aiService.Insights(r.Context(), req.Data)
	if err != nil {
		h.writeAIError(w, "insights", err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.AITextResponse{Text: text})
}

func (h *AIHandler) writeAIError(w http.ResponseWriter, operation string, err error) {
	if errors.Is(err, services.ErrAIUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "AI features are not configured")
		return
	}
	log.Printf("[AIHandler] %s failed: %v", operation, err)
	writeError(w, http.StatusBadGateway, "AI request failed")
}
