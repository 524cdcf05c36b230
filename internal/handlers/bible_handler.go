// File: internal/handlers/bible_handler.go
package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/graceworks/churchos/internal/services/bible"
)

type BibleHandler struct {
	client *bible.Client
}

func NewBibleHandler(client *bible.Client) *BibleHandler {
	return &BibleHandler{client: client}
}

// Lookup handles GET /api/bible/{reference}.
func (h *BibleHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	passage, err := h.client.Lookup(r.Context(), reference)
	if err != nil {
		if bible.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Passage not found")
			return
		}
		log.Printf("[BibleHandler] Lookup %q failed: %v", reference, err)
		writeError(w, http.StatusBadGateway, "Scripture lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, passage)
}
