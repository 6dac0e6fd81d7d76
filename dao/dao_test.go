package dao

import (
	"context"
	"testing"

	"LoveNote/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Users{},
		&models.Note{},
		&models.NoteLike{},
		&models.UserProfile{},
		&models.PushSubscription{},
	))
	return db
}

func TestVisibleTo(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	notes := NewNoteDAO(db)

	for i, n := range []models.Note{
		{ID: 1, Title: "alice shared", SharedState: models.SharedState{AuthorID: 10, IsShared: true}},
		{ID: 2, Title: "alice private", SharedState: models.SharedState{AuthorID: 10}},
		{ID: 3, Title: "bob private", SharedState: models.SharedState{AuthorID: 20}},
		{ID: 4, Title: "carol shared", SharedState: models.SharedState{AuthorID: 30, IsShared: true}},
	} {
		require.NoError(t, notes.Create(ctx, &n), i)
	}

	ids := func(items []*models.Note) []uint64 {
		out := make([]uint64, 0, len(items))
		for _, n := range items {
			out = append(out, n.ID)
		}
		return out
	}

	bob, err := notes.ListVisible(ctx, 20, 10, NoteFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 3}, ids(bob))

	single, err := notes.ListVisible(ctx, 20, 0, NoteFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{3}, ids(single))

	_, err = notes.FindVisible(ctx, 2, 20, 10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteApproved(t *testing.T) {
	ctx := context.Background()
	notes := NewNoteDAO(newTestDB(t))
	requester := uint64(10)
	require.NoError(t, notes.Create(ctx, &models.Note{ID: 1, SharedState: models.SharedState{AuthorID: 10, DeletionRequestedBy: &requester}}))

	rows, err := notes.DeleteApproved(ctx, 1, 99)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = notes.DeleteApproved(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestLinkPartner(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))
	a := &models.Users{Username: "alice", Email: "a@example.com", Password: "x"}
	b := &models.Users{Username: "bob", Email: "b@example.com", Password: "x"}
	require.NoError(t, users.Create(ctx, a))
	require.NoError(t, users.Create(ctx, b))

	n, err := users.LinkPartner(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// 已配对的不会被覆盖
	n, err = users.LinkPartner(ctx, a.ID, 999)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = users.UnlinkPartner(ctx, a.ID, 999)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = users.UnlinkPartner(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	locked, err := users.LockPair(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Len(t, locked, 2)
	assert.False(t, locked[a.ID].HasPartner())
}

func TestProfileClaimReminder(t *testing.T) {
	ctx := context.Background()
	profiles := NewProfileDAO(newTestDB(t))

	p, err := profiles.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.False(t, p.NotificationsEnabled)
	assert.True(t, p.NotifyJournalReminder)
	assert.Equal(t, models.DefaultReminderTime, p.JournalReminderTime)

	again, err := profiles.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)

	ok, err := profiles.ClaimReminder(ctx, 1, "2026-10-15")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = profiles.ClaimReminder(ctx, 1, "2026-10-15")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = profiles.ClaimReminder(ctx, 1, "2026-10-16")
	require.NoError(t, err)
	assert.True(t, ok)

	// 撤销只在标记仍为该日期时生效
	require.NoError(t, profiles.ReleaseReminder(ctx, 1, "2026-10-17", ""))
	ok, err = profiles.ClaimReminder(ctx, 1, "2026-10-16")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, profiles.ReleaseReminder(ctx, 1, "2026-10-16", "2026-10-15"))
	ok, err = profiles.ClaimReminder(ctx, 1, "2026-10-16")
	require.NoError(t, err)
	assert.True(t, ok)

	missing, err := profiles.FindByUserID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPushSubscriptionUpsert(t *testing.T) {
	ctx := context.Background()
	subs := NewPushSubscriptionDAO(newTestDB(t))

	created, err := subs.Upsert(ctx, &models.PushSubscription{UserID: 1, Endpoint: "e", P256dh: "k1", Auth: "a1"})
	require.NoError(t, err)
	assert.True(t, created)

	sub := &models.PushSubscription{UserID: 1, Endpoint: "e", P256dh: "k2", Auth: "a2"}
	created, err = subs.Upsert(ctx, sub)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NotZero(t, sub.ID)

	// 不同用户可以登记同一 endpoint
	created, err = subs.Upsert(ctx, &models.PushSubscription{UserID: 2, Endpoint: "e", P256dh: "k", Auth: "a"})
	require.NoError(t, err)
	assert.True(t, created)

	n, err := subs.CountByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := subs.DeleteOwned(ctx, sub.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
