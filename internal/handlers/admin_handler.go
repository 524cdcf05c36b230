// File: internal/handlers/admin_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/repository/user"
	"github.com/graceworks/churchos/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		log.Printf("[AdminHandler] Error listing users: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateBranch handles POST /api/admin/branches.
func (h *AdminHandler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateBranchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.adminService.CreateBranch(r.Context(), principal, req)
	if err != nil {
		log.Printf("[AdminHandler] Error creating branch: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create branch")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ChangeRole handles POST /api/admin/users/{id}/role.
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	userID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dtos.ChangeRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.adminService.ChangeRole(r.Context(), principal, uint(userID), req.Role); err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, services.ErrUnknownRole):
			writeError(w, http.StatusBadRequest, "Unknown role")
		default:
			log.Printf("[AdminHandler] Error changing role for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "Failed to change role")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Role updated"})
}

// AuditLogs handles GET /api/admin/audit-logs.
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.adminService.AuditLogs(r.Context())
	if err != nil {
		log.Printf("[AdminHandler] Error listing audit logs: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list audit logs")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// ListInvitations handles GET /api/admin/invitations.
func (h *AdminHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.adminService.ListInvitations(r.Context())
	if err != nil {
		log.Printf("[AdminHandler] Error listing invitations: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list invitations")
		return
	}
	writeJSON(w, http.StatusOK, invitations)
}

// CreateInvitation handles POST /api/admin/invitations.
func (h *AdminHandler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateInvitationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.adminService.CreateInvitation(r.Context(), principal, req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownRole) {
			writeError(w, http.StatusBadRequest, "Invitations cannot carry that role")
			return
		}
		log.Printf("[AdminHandler] Error creating invitation: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create invitation")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
