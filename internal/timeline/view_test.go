// File: internal/timeline/view_test.go
package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceworks/churchos/internal/dtos"
)

func msg(id uint, content string) dtos.Message {
	return dtos.Message{
		ID:        id,
		GroupID:   7,
		SenderID:  1,
		Content:   content,
		Timestamp: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Second),
	}
}

func TestMergeAppendsNewMessages(t *testing.T) {
	v := NewView()

	assert.True(t, v.Merge(msg(1, "hello")))
	assert.True(t, v.Merge(msg(2, "world")))

	got := v.Messages()
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
}

func TestMergeIsIdempotent(t *testing.T) {
	v := NewView()
	v.Merge(msg(1, "hello"))

	// The sender receives its own broadcast; the duplicate must be a
	// no-op and must not reorder the view.
	changed := v.Merge(msg(1, "hello"))

	assert.False(t, changed)
	assert.Equal(t, 1, v.Len())

	again := v.Messages()
	v.Merge(msg(1, "hello"))
	assert.Equal(t, again, v.Messages())
}

func TestMergeAfterResetDeduplicatesAgainstHistory(t *testing.T) {
	v := NewView()
	v.Reset([]dtos.Message{msg(1, "a"), msg(2, "b")})

	// A push for a message that was already part of the fetched history.
	assert.False(t, v.Merge(msg(2, "b")))
	assert.True(t, v.Merge(msg(3, "c")))

	got := v.Messages()
	require.Len(t, got, 3)
	assert.Equal(t, []uint{1, 2, 3}, []uint{got[0].ID, got[1].ID, got[2].ID})
}

func TestResetReplacesView(t *testing.T) {
	v := NewView()
	v.Merge(msg(9, "stale optimistic entry"))

	v.Reset([]dtos.Message{msg(1, "a"), msg(2, "b")})

	got := v.Messages()
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestMessagesReturnsCopy(t *testing.T) {
	v := NewView()
	v.Merge(msg(1, "a"))

	got := v.Messages()
	got[0].Content = "mutated"

	assert.Equal(t, "a", v.Messages()[0].Content)
}
