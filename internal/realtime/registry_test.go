// File: internal/realtime/registry_test.go
package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeConn implements Conn for registry and dispatcher tests.
type fakeConn struct {
	id     string
	mu     sync.Mutex
	sent   [][]byte
	ready  bool
	failed bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id, ready: true}
}

func (f *fakeConn) ID() string { return f.id }

func (f *fakeConn) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ready
}

func (f *fakeConn) Send(payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.ready {
		return ErrConnClosed
	}
	if f.failed {
		return ErrConnClosed
	}
	f.sent = append(f.sent, payload)
	return nil
}

// forceClose simulates a transport drop without a Detach call.
func (f *fakeConn) forceClose() {
	f.mu.Lock()
	f.ready = false
	f.mu.Unlock()
}

func (f *fakeConn) received() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.sent))
	copy(out, f.sent)
	return out
}

func TestRegistryAttachDetach(t *testing.T) {
	r := NewRegistry()
	a := newFakeConn("a")

	r.Attach(7, a)
	assert.Equal(t, 1, r.Len(7))

	r.Detach(7, a)
	assert.Equal(t, 0, r.Len(7))

	// Detach of an absent connection is a no-op.
	r.Detach(7, a)
	assert.Equal(t, 0, r.Len(7))
}

func TestRegistryIgnoresZeroGroup(t *testing.T) {
	r := NewRegistry()
	a := newFakeConn("a")

	r.Attach(0, a)
	assert.Empty(t, r.ConnectionsFor(0))
}

func TestRegistryReattachIsIdempotent(t *testing.T) {
	r := NewRegistry()
	a := newFakeConn("a")

	r.Attach(7, a)
	r.Attach(7, a)
	assert.Equal(t, 1, r.Len(7))
}

func TestConnectionsForReturnsSnapshot(t *testing.T) {
	r := NewRegistry()
	a := newFakeConn("a")
	b := newFakeConn("b")
	r.Attach(7, a)
	r.Attach(7, b)

	snapshot := r.ConnectionsFor(7)
	assert.Len(t, snapshot, 2)

	// Mutating the registry after the snapshot must not affect it.
	r.Detach(7, a)
	r.Detach(7, b)
	assert.Len(t, snapshot, 2)
	assert.Equal(t, 0, r.Len(7))
}

func TestRegistryConcurrentAttachDetach(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c := newFakeConn(string(rune('a' + n)))
			for j := 0; j < 100; j++ {
				r.Attach(uint(n%4+1), c)
				r.ConnectionsFor(uint(n%4 + 1))
				r.Detach(uint(n%4+1), c)
			}
		}(i)
	}
	wg.Wait()

	for g := uint(1); g <= 4; g++ {
		assert.Equal(t, 0, r.Len(g))
	}
}
