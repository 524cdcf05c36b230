// File: internal/handlers/group_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/repository/group"
	"github.com/graceworks/churchos/internal/services"
)

// GroupHandler serves group listings and the group detail page, which
// is where history gating by membership happens.
type GroupHandler struct {
	groupService *services.GroupService
}

func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// List handles GET /api/groups.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groups, err := h.groupService.ListGroups(r.Context(), principal)
	if err != nil {
		log.Printf("[GroupHandler] Error listing groups: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list groups")
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// Detail handles GET /api/groups/{id}.
func (h *GroupHandler) Detail(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groupID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	detail, err := h.groupService.GetGroupDetail(r.Context(), uint(groupID), principal)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			writeError(w, http.StatusNotFound, "Group not found")
			return
		}
		log.Printf("[GroupHandler] Error loading group %d: %v", groupID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load group")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
