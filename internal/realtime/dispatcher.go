// File: internal/realtime/dispatcher.go
package realtime

import (
	"encoding/json"
	"log"
)

// Dispatcher fans one event out to every connection currently attached
// to a group. Delivery is best-effort at-most-once per connection: the
// durable message store is the source of truth, the live channel is a
// notification layer only.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher constructs a Dispatcher over registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Broadcast marshals event once and sends it to every open connection
// registered for groupID at the moment of the call. Sends happen
// sequentially, so each socket observes broadcasts for its group in
// the order they were issued. A failed or non-ready connection is
// skipped; it never aborts delivery to the rest. Returns the number of
// connections the payload was handed to.
func (d *Dispatcher) Broadcast(groupID uint, event interface{}) int {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Dispatcher] Failed to encode event for group %d: %v", groupID, err)
		return 0
	}

	delivered := 0
	for _, conn := range d.registry.ConnectionsFor(groupID) {
		if !conn.Ready() {
			continue
		}
		if err := conn.Send(payload); err != nil {
			// The client will catch up from history on its next fetch.
			log.Printf("[Dispatcher] Dropped push to connection %s in group %d: %v", conn.ID(), groupID, err)
			continue
		}
		delivered++
	}
	return delivered
}
