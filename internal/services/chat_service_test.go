// File: internal/services/chat_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/repository/message"
)

// recordingBroadcaster captures every event it is asked to fan out.
// The optional onBroadcast hook runs at broadcast time, which lets
// tests observe the state of the store at that exact moment.
type recordingBroadcaster struct {
	events      []MessageEvent
	groupIDs    []uint
	onBroadcast func()
}

func (b *recordingBroadcaster) Broadcast(groupID uint, event interface{}) int {
	if b.onBroadcast != nil {
		b.onBroadcast()
	}
	b.events = append(b.events, event.(MessageEvent))
	b.groupIDs = append(b.groupIDs, groupID)
	return 1
}

type chatFixture struct {
	db          *gorm.DB
	svc         *ChatService
	broadcaster *recordingBroadcaster
	repo        message.MessageRepository
	sender      domain.User
	group       domain.Group
}

func setupChat(t *testing.T) chatFixture {
	t.Helper()

	db := newTestDB(t)
	_, branch := seedChurch(t, db)
	sender := seedUser(t, db, "Jane Smith", "jane@church.org", domain.RoleGroupLeader, &branch.ID)
	group := domain.Group{BranchID: branch.ID, Name: "Worship Team"}
	require.NoError(t, db.Create(&group).Error)

	repo := message.NewMessageRepository(db)
	broadcaster := &recordingBroadcaster{}
	svc, err := NewChatService(repo, broadcaster, &NoOpLogger{})
	require.NoError(t, err)
	return chatFixture{db: db, svc: svc, broadcaster: broadcaster, repo: repo, sender: sender, group: group}
}

func TestPostMessagePersistsAndBroadcasts(t *testing.T) {
	f := setupChat(t)
	ctx := context.Background()

	id, err := f.svc.PostMessage(ctx, f.group.ID, f.sender.ID, "Rehearsal at 6 PM!")
	require.NoError(t, err)
	require.NotZero(t, id)

	stored, err := f.repo.FindByIDWithSender(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Rehearsal at 6 PM!", stored.Content)

	require.Len(t, f.broadcaster.events, 1)
	event := f.broadcaster.events[0]
	assert.Equal(t, EventNewMessage, event.Type)
	assert.Equal(t, id, event.Message.ID)
	assert.Equal(t, f.group.ID, event.Message.GroupID)
	assert.Equal(t, "Jane Smith", event.Message.SenderName)
	assert.Equal(t, []uint{f.group.ID}, f.broadcaster.groupIDs)
}

func TestPostMessagePersistsBeforeBroadcast(t *testing.T) {
	f := setupChat(t)
	ctx := context.Background()

	// At the instant of the push the row must already be readable: a
	// client that refetches on push may never miss the message.
	var countAtBroadcast int64
	f.broadcaster.onBroadcast = func() {
		var err error
		countAtBroadcast, err = f.repo.CountByGroupID(ctx, f.group.ID)
		require.NoError(t, err)
	}

	_, err := f.svc.PostMessage(ctx, f.group.ID, f.sender.ID, "persist first")
	require.NoError(t, err)
	assert.Equal(t, int64(1), countAtBroadcast)
}

func TestPostMessageValidation(t *testing.T) {
	f := setupChat(t)
	ctx := context.Background()

	_, err := f.svc.PostMessage(ctx, f.group.ID, f.sender.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = f.svc.PostMessage(ctx, 0, f.sender.ID, "hello")
	assert.ErrorIs(t, err, ErrInvalidGroup)

	assert.Empty(t, f.broadcaster.events, "rejected messages must never be pushed")
}

func TestPostMessageHistoryOrder(t *testing.T) {
	f := setupChat(t)
	ctx := context.Background()

	contents := []string{"first", "second", "third", "fourth"}
	var ids []uint
	for _, c := range contents {
		id, err := f.svc.PostMessage(ctx, f.group.ID, f.sender.ID, c)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	history, err := f.repo.FindByGroupID(ctx, f.group.ID)
	require.NoError(t, err)
	require.Len(t, history, len(contents))
	for i, row := range history {
		assert.Equal(t, ids[i], row.ID)
		assert.Equal(t, contents[i], row.Content)
	}
}

func TestPostMessageGroupScoping(t *testing.T) {
	f := setupChat(t)
	ctx := context.Background()

	other := domain.Group{BranchID: f.group.BranchID, Name: "Youth Ministry"}
	require.NoError(t, f.db.Create(&other).Error)

	_, err := f.svc.PostMessage(ctx, f.group.ID, f.sender.ID, "only for worship team")
	require.NoError(t, err)

	count, err := f.repo.CountByGroupID(ctx, other.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "a message must never leak into another group's history")

	for _, gid := range f.broadcaster.groupIDs {
		assert.Equal(t, f.group.ID, gid)
	}
}
