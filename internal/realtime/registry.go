// File: internal/realtime/registry.go
package realtime

import "sync"

// Registry tracks which live connections want pushes for which group.
// One connection belongs to at most one group, matching the
// one-group-per-socket connection model. All methods are safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	groups map[uint]map[string]Conn
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[uint]map[string]Conn)}
}

// Attach registers conn under groupID. A non-positive group is a
// silent no-op: the connection stays open but never receives a
// broadcast.
func (r *Registry) Attach(groupID uint, conn Conn) {
	if groupID == 0 || conn == nil {
		return
	}

	r.mu.Lock()
	set := r.groups[groupID]
	if set == nil {
		set = make(map[string]Conn)
		r.groups[groupID] = set
	}
	set[conn.ID()] = conn
	r.mu.Unlock()
}

// Detach removes conn from groupID's set. Idempotent: detaching a
// connection that was never attached is a no-op.
func (r *Registry) Detach(groupID uint, conn Conn) {
	if groupID == 0 || conn == nil {
		return
	}

	r.mu.Lock()
	if set, ok := r.groups[groupID]; ok {
		delete(set, conn.ID())
		if len(set) == 0 {
			delete(r.groups, groupID)
		}
	}
	r.mu.Unlock()
}

// ConnectionsFor returns a snapshot of the current set for groupID.
// Iterating the snapshot is safe against a concurrent Detach; a send
// to a connection closed mid-iteration fails on that connection only.
func (r *Registry) ConnectionsFor(groupID uint) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.groups[groupID]
	if len(set) == 0 {
		return nil
	}
	conns := make([]Conn, 0, len(set))
	for _, c := range set {
		conns = append(conns, c)
	}
	return conns
}

// Len reports how many connections are attached to groupID.
func (r *Registry) Len(groupID uint) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups[groupID])
}
