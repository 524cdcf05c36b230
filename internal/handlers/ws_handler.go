// File: internal/handlers/ws_handler.go
package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/graceworks/churchos/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin dashboards connect here; the session middleware has
	// already authenticated the request.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades GET /ws and attaches the connection to its
// group's broadcast set.
type WSHandler struct {
	registry *realtime.Registry
}

func NewWSHandler(registry *realtime.Registry) *WSHandler {
	return &WSHandler{registry: registry}
}

// Serve handles the upgrade. A missing or non-numeric groupId is not
// an error: the socket is accepted but never attached, so it simply
// receives nothing.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	var groupID uint
	if raw := r.URL.Query().Get("groupId"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			groupID = uint(parsed)
		}
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WSHandler] Upgrade failed: %v", err)
		return
	}

	conn := realtime.NewWSConn(ws)
	conn.Start()
	h.registry.Attach(groupID, conn)
	log.Printf("[WSHandler] Connection %s attached to group %d", conn.ID(), groupID)

	// Inbound frames are drained and discarded; messages enter through
	// the REST ingress. The read loop's only job is to notice the close.
	go func() {
		defer func() {
			h.registry.Detach(groupID, conn)
			conn.Close(websocket.CloseNormalClosure, "")
			log.Printf("[WSHandler] Connection %s detached from group %d", conn.ID(), groupID)
		}()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
