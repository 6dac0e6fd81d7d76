package service

import (
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/types"
	"context"
	"fmt"
	"unicode/utf8"
)

const (
	maxTitleLength = 200
	maxMoodLength  = 50
)

// briefs 批量加载展示用的用户信息
type briefs map[uint64]*types.UserBrief

func loadBriefs(ctx context.Context, users *dao.Users, ids []uint64) (briefs, error) {
	seen := make(map[uint64]struct{}, len(ids))
	uniq := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	items, err := users.FindByIds(ctx, uniq)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	out := make(briefs, len(items))
	for _, u := range items {
		out[u.ID] = &types.UserBrief{ID: u.ID, Username: u.Username}
	}
	return out, nil
}

func (b briefs) get(id *uint64) *types.UserBrief {
	if id == nil {
		return nil
	}
	if u, ok := b[*id]; ok {
		return u
	}
	return &types.UserBrief{ID: *id}
}

func stateUserIDs(s *models.SharedState) []uint64 {
	ids := []uint64{s.AuthorID}
	for _, p := range []*uint64{s.DeletionRequestedBy, s.DeletionApprovedBy, s.EditRequestedBy, s.EditApprovedBy} {
		if p != nil {
			ids = append(ids, *p)
		}
	}
	return ids
}

func sharedFields(s *models.SharedState, b briefs) types.SharedFields {
	author := s.AuthorID
	return types.SharedFields{
		Author:              b.get(&author),
		IsShared:            s.IsShared,
		DeletionRequestedBy: b.get(s.DeletionRequestedBy),
		DeletionApprovedBy:  b.get(s.DeletionApprovedBy),
		EditRequestedBy:     b.get(s.EditRequestedBy),
		EditApprovedBy:      b.get(s.EditApprovedBy),
		PendingTitle:        s.PendingTitle,
		PendingContent:      s.PendingContent,
	}
}

func checkTitle(title *string) error {
	if title != nil && utf8.RuneCountInString(*title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func quoted(title string) string {
	return fmt.Sprintf("\"%s\"", title)
}
