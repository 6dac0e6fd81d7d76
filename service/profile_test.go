package service

import (
	"context"
	"testing"

	"LoveNote/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestProfileDefaults(t *testing.T) {
	e := newTestEnv(t)
	a := e.newUser(t, "alice")

	p, err := e.profile.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.False(t, p.NotificationsEnabled)
	assert.True(t, p.NotifyNoteCreated)
	assert.True(t, p.NotifyJournalReminder)
	assert.Equal(t, "21:00:00", p.JournalReminderTime)
	assert.False(t, p.ShareBio)
	assert.Nil(t, p.Birthday)

	again, err := e.profile.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
}

func TestProfileUpdate(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	a := e.newUser(t, "alice")

	p, err := e.profile.Update(ctx, a.ID, &types.ProfileUpdateRequest{
		Bio:                  ptr("hello"),
		Birthday:             ptr("1995-02-14"),
		ShareBio:             ptr(true),
		NotificationsEnabled: ptr(true),
		NotifyNoteLiked:      ptr(false),
		JournalReminderTime:  ptr("08:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Bio)
	require.NotNil(t, p.Birthday)
	assert.Equal(t, "1995-02-14", *p.Birthday)
	assert.True(t, p.ShareBio)
	assert.True(t, p.NotificationsEnabled)
	assert.False(t, p.NotifyNoteLiked)
	assert.True(t, p.NotifyNoteCreated)
	assert.Equal(t, "08:30:00", p.JournalReminderTime)

	// 未提供的字段保持不变，空字符串清空日期
	p, err = e.profile.Update(ctx, a.ID, &types.ProfileUpdateRequest{Birthday: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, p.Birthday)
	assert.Equal(t, "hello", p.Bio)

	_, err = e.profile.Update(ctx, a.ID, &types.ProfileUpdateRequest{Birthday: ptr("14.02.1995")})
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = e.profile.Update(ctx, a.ID, &types.ProfileUpdateRequest{JournalReminderTime: ptr("9pm")})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestParseReminderTime(t *testing.T) {
	tests := []struct {
		in   string
		want datatypes.Time
		ok   bool
	}{
		{"21:00", datatypes.NewTime(21, 0, 0, 0), true},
		{" 07:05:30 ", datatypes.NewTime(7, 5, 30, 0), true},
		{"24:00", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseReminderTime(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
