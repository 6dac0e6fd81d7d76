package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectPartner(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	a, b := e.newUser(t, "alice"), e.newUser(t, "bob")

	partner, err := e.partner.ConnectPartner(ctx, a.ID, "  "+*b.PartnerCode+" ")
	require.NoError(t, err)
	assert.Equal(t, b.ID, partner.ID)

	ra, err := e.users.FindById(ctx, a.ID)
	require.NoError(t, err)
	rb, err := e.users.FindById(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, ra.Partner())
	assert.Equal(t, a.ID, rb.Partner())

	// 重复配对，无论从哪一方发起
	_, err = e.partner.ConnectPartner(ctx, a.ID, *b.PartnerCode)
	assert.ErrorIs(t, err, ErrAlreadyPaired)
	_, err = e.partner.ConnectPartner(ctx, b.ID, *a.PartnerCode)
	assert.ErrorIs(t, err, ErrAlreadyPaired)
}

func TestConnectPartnerErrors(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	a, b := e.pair(t, "alice", "bob")
	c := e.newUser(t, "carol")

	tests := []struct {
		name string
		user uint64
		code string
		want error
	}{
		{"empty code", c.ID, "   ", ErrEmptyCode},
		{"unknown code", c.ID, "NOPE", ErrInvalidCode},
		{"self", c.ID, *c.PartnerCode, ErrSelfLink},
		{"requester paired", a.ID, *c.PartnerCode, ErrAlreadyPaired},
		{"target paired", c.ID, *b.PartnerCode, ErrAlreadyPaired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.partner.ConnectPartner(ctx, tt.user, tt.code)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	rc, err := e.users.FindById(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, rc.HasPartner())
}

func TestDisconnectPartner(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	a, b := e.pair(t, "alice", "bob")

	require.NoError(t, e.partner.DisconnectPartner(ctx, b.ID))

	ra, err := e.users.FindById(ctx, a.ID)
	require.NoError(t, err)
	rb, err := e.users.FindById(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, ra.HasPartner())
	assert.False(t, rb.HasPartner())

	assert.ErrorIs(t, e.partner.DisconnectPartner(ctx, a.ID), ErrNoPartner)

	// 解除后可以重新配对
	_, err = e.partner.ConnectPartner(ctx, b.ID, *a.PartnerCode)
	require.NoError(t, err)
}

func TestPartnerProfile(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	a, b := e.pair(t, "alice", "bob")
	c := e.newUser(t, "carol")

	_, err := e.profiles.GetOrCreate(ctx, b.ID)
	require.NoError(t, err)
	require.NoError(t, e.profiles.UpdateByUserID(ctx, b.ID, map[string]any{
		"bio":            "hi",
		"share_bio":      true,
		"favorite_color": "green",
	}))

	fields, err := e.partner.PartnerProfile(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", fields.Bio)
	assert.Equal(t, "green", fields.FavoriteColor)

	_, err = e.partner.PartnerProfile(ctx, c.ID)
	assert.ErrorIs(t, err, ErrPartnerAbsent)
}

func TestVisibilityAfterDisconnect(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t)
	a, b := e.pair(t, "alice", "bob")

	_, err := e.note.Create(ctx, a.ID, mustNoteReq("shared", true))
	require.NoError(t, err)

	list, err := e.note.List(ctx, b.ID, noteFilter(""))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, e.partner.DisconnectPartner(ctx, a.ID))
	list, err = e.note.List(ctx, b.ID, noteFilter(""))
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = e.note.List(ctx, a.ID, noteFilter(""))
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
