// File: internal/handlers/volunteer_handler.go
package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/services"
)

type VolunteerHandler struct {
	volunteerService *services.VolunteerService
}

func NewVolunteerHandler(volunteerService *services.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{volunteerService: volunteerService}
}

// ListNeeds handles GET /api/volunteer-needs. Elevated callers may
// pick a branch via ?branchId=N; everyone else sees their own branch.
func (h *VolunteerHandler) ListNeeds(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var branchID uint
	if raw := r.URL.Query().Get("branchId"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			branchID = uint(parsed)
		}
	}

	rows, err := h.volunteerService.OpenNeeds(r.Context(), principal, branchID)
	if err != nil {
		log.Printf("[VolunteerHandler] Error listing needs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list volunteer needs")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// CreateNeed handles POST /api/volunteer-needs.
func (h *VolunteerHandler) CreateNeed(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateNeedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.volunteerService.CreateNeed(r.Context(), principal, req)
	if err != nil {
		log.Printf("[VolunteerHandler] Error creating need: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create volunteer need")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CreateSignup handles POST /api/volunteer-signups.
func (h *VolunteerHandler) CreateSignup(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateSignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.volunteerService.SignUp(r.Context(), principal, req.NeedID)
	if err != nil {
		log.Printf("[VolunteerHandler] Error recording signup: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// MySignups handles GET /api/my-signups.
func (h *VolunteerHandler) MySignups(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.volunteerService.MySignups(r.Context(), principal)
	if err != nil {
		log.Printf("[VolunteerHandler] Error listing signups for user %d: %v", principal.UserID, err)
		writeError(w, http.StatusInternalServerError, "Failed to list signups")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
