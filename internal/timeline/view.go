// File: internal/timeline/view.go

// Package timeline implements the client-side merge rule for a group's
// message view: history fetches replace the view, live pushes append
// unless the message identity is already present. Message identity is
// the sole deduplication key, which makes the merge tolerant of a
// sender receiving its own broadcast.
package timeline

import "github.com/graceworks/churchos/internal/dtos"

// View is a client-local ordered list of one group's messages. It is
// not safe for concurrent use; a consumer owns one View per open group.
type View struct {
	messages []dtos.Message
	seen     map[uint]struct{}
}

// NewView constructs an empty View.
func NewView() *View {
	return &View{seen: make(map[uint]struct{})}
}

// Reset replaces the view with a freshly fetched history. This is the
// recovery path after a reconnect: the live stream never backfills, so
// a suspected gap means refetch, not repair.
func (v *View) Reset(history []dtos.Message) {
	v.messages = make([]dtos.Message, 0, len(history))
	v.seen = make(map[uint]struct{}, len(history))
	for _, msg := range history {
		v.Merge(msg)
	}
}

// Merge appends msg unless a message with the same identity is already
// present. It reports whether the view changed. Pushes are appended in
// arrival order; no reordering happens on receipt.
func (v *View) Merge(msg dtos.Message) bool {
	if _, ok := v.seen[msg.ID]; ok {
		return false
	}
	v.seen[msg.ID] = struct{}{}
	v.messages = append(v.messages, msg)
	return true
}

// Messages returns a copy of the current view, oldest first.
func (v *View) Messages() []dtos.Message {
	out := make([]dtos.Message, len(v.messages))
	copy(out, v.messages)
	return out
}

// Len reports how many distinct messages the view holds.
func (v *View) Len() int {
	return len(v.messages)
}
