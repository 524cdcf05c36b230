// File: internal/handlers/prayer_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/services"
)

type PrayerHandler struct {
	prayerService *services.PrayerService
}

func NewPrayerHandler(prayerService *services.PrayerService) *PrayerHandler {
	return &PrayerHandler{prayerService: prayerService}
}

// List handles GET /api/prayer-requests.
func (h *PrayerHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.prayerService.List(r.Context())
	if err != nil {
		log.Printf("[PrayerHandler] Error listing prayer requests: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list prayer requests")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// Create handles POST /api/prayer-requests.
func (h *PrayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreatePrayerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.prayerService.Post(r.Context(), principal, req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyPrayer) {
			writeError(w, http.StatusBadRequest, "Content cannot be empty")
			return
		}
		log.Printf("[PrayerHandler] Error posting prayer request: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to post prayer request")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
