// File: internal/realtime/dispatcher_test.go
package realtime

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Type string `json:"type"`
	Seq  int    `json:"seq"`
}

func TestBroadcastDeliversToEveryAttachedConnection(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)
	a := newFakeConn("a")
	b := newFakeConn("b")
	r.Attach(7, a)
	r.Attach(7, b)

	delivered := d.Broadcast(7, testEvent{Type: "NEW_MESSAGE", Seq: 1})

	assert.Equal(t, 2, delivered)
	require.Len(t, a.received(), 1)
	require.Len(t, b.received(), 1)

	var got testEvent
	require.NoError(t, json.Unmarshal(a.received()[0], &got))
	assert.Equal(t, "NEW_MESSAGE", got.Type)
	assert.Equal(t, 1, got.Seq)
}

func TestBroadcastPreservesPerConnectionOrder(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)
	a := newFakeConn("a")
	r.Attach(7, a)

	for i := 1; i <= 5; i++ {
		d.Broadcast(7, testEvent{Type: "NEW_MESSAGE", Seq: i})
	}

	got := a.received()
	require.Len(t, got, 5)
	for i, payload := range got {
		var ev testEvent
		require.NoError(t, json.Unmarshal(payload, &ev))
		assert.Equal(t, i+1, ev.Seq, "push %d out of order", i)
	}
}

func TestBroadcastScopedToGroup(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)
	g7 := newFakeConn("g7")
	g9 := newFakeConn("g9")
	r.Attach(7, g7)
	r.Attach(9, g9)

	d.Broadcast(7, testEvent{Type: "NEW_MESSAGE", Seq: 1})

	assert.Len(t, g7.received(), 1)
	assert.Empty(t, g9.received(), "connection attached to group 9 must never see group 7 traffic")
}

func TestBroadcastSkipsClosedConnection(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)
	a := newFakeConn("a")
	b := newFakeConn("b")
	r.Attach(7, a)
	r.Attach(7, b)

	// b drops at the transport level without ever calling Detach.
	b.forceClose()

	delivered := d.Broadcast(7, testEvent{Type: "NEW_MESSAGE", Seq: 1})

	assert.Equal(t, 1, delivered)
	assert.Len(t, a.received(), 1)
	assert.Empty(t, b.received())
}

func TestBroadcastIsolatesSendFailures(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)

	// Attach a failing connection among healthy ones. Map iteration
	// order varies, so every healthy connection must still be reached
	// regardless of where the failure lands.
	bad := newFakeConn("bad")
	bad.failed = true
	healthy := make([]*fakeConn, 4)
	r.Attach(7, bad)
	for i := range healthy {
		healthy[i] = newFakeConn(fmt.Sprintf("ok-%d", i))
		r.Attach(7, healthy[i])
	}

	delivered := d.Broadcast(7, testEvent{Type: "NEW_MESSAGE", Seq: 1})

	assert.Equal(t, len(healthy), delivered)
	for _, c := range healthy {
		assert.Len(t, c.received(), 1)
	}
}

func TestBroadcastToEmptyGroup(t *testing.T) {
	d := NewDispatcher(NewRegistry())
	assert.Equal(t, 0, d.Broadcast(42, testEvent{Type: "NEW_MESSAGE"}))
}
