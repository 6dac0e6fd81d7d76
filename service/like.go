package service

import (
	"LoveNote/dao"
	"LoveNote/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// ToggleLike 已点赞则取消，否则点赞；返回操作后的状态
	ToggleLike(ctx context.Context, userID, noteID uint64) (bool, error)
}

type LikeService struct {
	NoteDAO     *dao.NoteDAO
	NoteLikeDAO *dao.NoteLikeDAO
	Visibility  IVisibilityService
	Notify      INotifyService
}

func (s *LikeService) ToggleLike(ctx context.Context, userID, noteID uint64) (bool, error) {
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return false, err
	}
	note, err := s.NoteDAO.FindVisible(ctx, noteID, v.UserID, v.PartnerID)
	if err != nil {
		return false, notFound(err)
	}

	var liked, fresh bool
	err = s.NoteLikeDAO.Transaction(ctx, func(tx *gorm.DB) error {
		likes := s.NoteLikeDAO.WithDB(tx)

		removed, err := likes.Remove(ctx, noteID, v.UserID)
		if err != nil {
			return err
		}
		if removed {
			liked = false
			return nil
		}

		if err := likes.Create(ctx, &models.NoteLike{NoteID: noteID, UserID: v.UserID}); err != nil {
			// 并发点赞时唯一键冲突，视为已点赞
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				liked = true
				return nil
			}
			return err
		}
		liked, fresh = true, true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	if fresh && note.AuthorID != v.UserID && note.AuthorID == v.PartnerID {
		s.Notify.Notify(context.WithoutCancel(ctx), v.User, &Message{
			Event:  EventNoteLiked,
			Title:  fmt.Sprintf("❤️ %s liked your note", v.User.Username),
			Body:   quoted(note.Title),
			NoteID: note.ID,
			To:     note.AuthorID,
		})
	}
	return liked, nil
}
