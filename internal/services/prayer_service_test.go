// File: internal/services/prayer_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceworks/churchos/internal/domain"
	"github.com/graceworks/churchos/internal/dtos"
	"github.com/graceworks/churchos/internal/repository/prayer"
)

func TestPrayerAnonymityIsPreserved(t *testing.T) {
	db := newTestDB(t)
	_, br := seedChurch(t, db)
	member := seedUser(t, db, "Bob Wilson", "bob@church.org", domain.RoleMember, &br.ID)

	svc, err := NewPrayerService(prayer.NewPrayerRepository(db), &NoOpLogger{})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Post(ctx, principalFor(member), dtos.CreatePrayerRequest{
		Content: "Please pray for my family", IsAnonymous: false,
	})
	require.NoError(t, err)
	anon, err := svc.Post(ctx, principalFor(member), dtos.CreatePrayerRequest{
		Content: "A private struggle", IsAnonymous: true,
	})
	require.NoError(t, err)
	assert.Nil(t, anon.UserID, "the author never leaves the service on anonymous posts")

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		if row.IsAnonymous {
			assert.Nil(t, row.UserID)
			assert.Empty(t, row.UserName)
		} else {
			assert.Equal(t, "Bob Wilson", row.UserName)
		}
	}

	// The storage row still carries the author for accountability.
	var stored domain.PrayerRequest
	require.NoError(t, db.Where("is_anonymous = ?", true).First(&stored).Error)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, member.ID, *stored.UserID)
}

func TestPrayerRejectsEmptyContent(t *testing.T) {
	db := newTestDB(t)
	_, br := seedChurch(t, db)
	member := seedUser(t, db, "Bob Wilson", "bob@church.org", domain.RoleMember, &br.ID)

	svc, err := NewPrayerService(prayer.NewPrayerRepository(db), &NoOpLogger{})
	require.NoError(t, err)

	_, err = svc.Post(context.Background(), principalFor(member), dtos.CreatePrayerRequest{Content: "  "})
	assert.ErrorIs(t, err, ErrEmptyPrayer)
}
