// File: internal/handlers/announcement_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/services"
)

type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// List handles GET /api/announcements.
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.announcementService.List(r.Context(), principal)
	if err != nil {
		log.Printf("[AnnouncementHandler] Error listing announcements: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list announcements")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// Create handles POST /api/announcements.
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateAnnouncementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.announcementService.Post(r.Context(), principal, req)
	if err != nil {
		if errors.Is(err, services.ErrBranchRequired) {
			writeError(w, http.StatusBadRequest, "Branch announcements need a branch")
			return
		}
		log.Printf("[AnnouncementHandler] Error posting announcement: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to post announcement")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
