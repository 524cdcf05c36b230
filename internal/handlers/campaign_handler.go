// File: internal/handlers/campaign_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/middleware"
	"github.com/graceworks/churchos/internal/repository/campaign"
	"github.com/graceworks/churchos/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// List handles GET /api/campaigns.
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.campaignService.ListCampaigns(r.Context())
	if err != nil {
		log.Printf("[CampaignHandler] Error listing campaigns: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list campaigns")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// Contributions handles GET /api/campaigns/{id}/contributions.
func (h *CampaignHandler) Contributions(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	campaignID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	rows, err := h.campaignService.Ledger(r.Context(), principal, uint(campaignID))
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrCampaignNotFound):
			writeError(w, http.StatusNotFound, "Campaign not found")
		case errors.Is(err, services.ErrLedgerRestricted):
			writeError(w, http.StatusForbidden, "This campaign's ledger is not visible to you")
		default:
			log.Printf("[CampaignHandler] Error loading ledger for campaign %d: %v", campaignID, err)
			writeError(w, http.StatusInternalServerError, "Failed to load contributions")
		}
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// CreateContribution handles POST /api/contributions.
func (h *CampaignHandler) CreateContribution(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.CreateContributionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.campaignService.RecordContribution(r.Context(), principal, req)
	if err != nil {
		switch {
		case errors.Is(err, campaign.ErrCampaignNotFound):
			writeError(w, http.StatusNotFound, "Campaign not found")
		case errors.Is(err, services.ErrCampaignClosed):
			writeError(w, http.StatusConflict, "Campaign is closed")
		case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrInvalidContributor):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("[CampaignHandler] Error recording contribution: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to record contribution")
		}
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// MyContributions handles GET /api/me/contributions.
func (h *CampaignHandler) MyContributions(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rows, err := h.campaignService.MyContributions(r.Context(), principal)
	if err != nil {
		log.Printf("[CampaignHandler] Error loading contributions for user %d: %v", principal.UserID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load contributions")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
