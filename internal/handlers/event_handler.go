// File: internal/handlers/event_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/repository/event"
	"github.com/graceworks/churchos/internal/services"
)

type EventHandler struct {
	eventService *services.EventService
	aiService    *services.AIService
}

func NewEventHandler(eventService *services.EventService, aiService *services.AIService) *EventHandler {
	return &EventHandler{eventService: eventService, aiService: aiService}
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	events, err := h.eventService.ListEvents(r.Context(), principal)
	if err != nil {
		log.Printf("[EventHandler] Error listing events: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.eventService.CreateEvent(r.Context(), principal, req)
	if err != nil {
		log.Printf("[EventHandler] Error creating event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Attendance handles POST /api/events/{id}/attendance.
func (h *EventHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	eventID, ok := eventIDFrom(w, r)
	if !ok {
		return
	}

	if err := h.eventService.RecordAttendance(r.Context(), principal, eventID); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		log.Printf("[EventHandler] Error recording attendance for event %d: %v", eventID, err)
		writeError(w, http.StatusInternalServerError, "Failed to record attendance")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Attendance recorded"})
}

// Notes handles POST /api/events/{id}/notes.
func (h *EventHandler) Notes(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	eventID, ok := eventIDFrom(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateNotesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.eventService.SaveNotes(r.Context(), principal, eventID, req.Notes); err != nil {
		switch {
		case errors.Is(err, event.ErrEventNotFound):
			writeError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, services.ErrEmptyNotes):
			writeError(w, http.StatusBadRequest, "Notes cannot be empty")
		default:
			log.Printf("[EventHandler] Error saving notes for event %d: %v", eventID, err)
			writeError(w, http.StatusInternalServerError, "Failed to save notes")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notes saved"})
}

// Summarize handles POST /api/events/{id}/summarize.
func (h *EventHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFrom(w, r)
	if !ok {
		return
	}

	summary, err := h.aiService.SummarizeMeeting(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIUnavailable):
			writeError(w, http.StatusServiceUnavailable, "AI features are not configured")
		case errors.Is(err, event.ErrEventNotFound):
			writeError(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, services.ErrNoMeetingNotes):
			writeError(w, http.StatusBadRequest, "Event has no meeting notes")
		default:
			log.Printf("[EventHandler] Error summarizing event %d: %v", eventID, err)
			writeError(w, http.StatusBadGateway, "Failed to summarize meeting")
		}
		return
	}
	writeJSON(w, http.StatusOK, dtos.AITextResponse{Text: summary})
}

func eventIDFrom(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event id")
		return 0, false
	}
	return uint(id), true
}
