// File: internal/handlers/directory_handler.go
package handlers

import (
	"log"
	"net/http"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/services"
)

// DirectoryHandler serves the identity and dashboard reads.
type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// Me handles GET /api/me.
func (h *DirectoryHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	usr, err := h.directoryService.Me(r.Context(), principal)
	if err != nil {
		log.Printf("[DirectoryHandler] Error loading user %d: %v", principal.UserID, err)
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, dtos.NewUserResponse(usr))
}

// Branches handles GET /api/branches.
func (h *DirectoryHandler) Branches(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	branches, err := h.directoryService.Branches(r.Context(), principal)
	if err != nil {
		log.Printf("[DirectoryHandler] Error listing branches: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list branches")
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

// Stats handles GET /api/stats.
func (h *DirectoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	overview, err := h.directoryService.Stats(r.Context(), principal)
	if err != nil {
		log.Printf("[DirectoryHandler] Error computing stats: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// BranchComparison handles GET /api/stats/branches-comparison.
func (h *DirectoryHandler) BranchComparison(w http.ResponseWriter, r *http.Request) {
	rows, err := h.directoryService.BranchComparison(r.Context())
	if err != nil {
		log.Printf("[DirectoryHandler] Error computing branch comparison: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute comparison")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
