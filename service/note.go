package service

import (
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/pkg/log"
	"LoveNote/pkg/snowflake"
	"LoveNote/types"
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	// List 自己的笔记和对方共享的笔记，支持按标题/内容搜索
	List(ctx context.Context, userID uint64, req *types.NoteListRequest) ([]*types.NoteItem, error)
	Detail(ctx context.Context, userID, noteID uint64) (*types.NoteItem, error)
	Create(ctx context.Context, userID uint64, req *types.NoteCreateRequest) (*types.NoteItem, error)
	// Update 作者直接修改或同意修改，对方修改需要作者同意
	Update(ctx context.Context, userID, noteID uint64, req *types.NoteUpdateRequest) (*NoteUpdateResult, error)
	// Delete 需双方同意才会删除
	Delete(ctx context.Context, userID, noteID uint64) (DeleteAction, error)
}

type NoteUpdateResult struct {
	Action EditAction
	Note   *types.NoteItem
}

type NoteService struct {
	NoteDAO     *dao.NoteDAO
	NoteLikeDAO *dao.NoteLikeDAO
	UsersDAO    *dao.Users
	Visibility  IVisibilityService
	Notify      INotifyService
}

func (s *NoteService) List(ctx context.Context, userID uint64, req *types.NoteListRequest) ([]*types.NoteItem, error) {
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	notes, err := s.NoteDAO.ListVisible(ctx, v.UserID, v.PartnerID, dao.NoteFilter{
		Search:     req.Search,
		SearchType: req.SearchType,
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return s.toItems(ctx, v, notes)
}

func (s *NoteService) Detail(ctx context.Context, userID, noteID uint64) (*types.NoteItem, error) {
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	note, err := s.NoteDAO.FindVisible(ctx, noteID, v.UserID, v.PartnerID)
	if err != nil {
		return nil, notFound(err)
	}
	return s.toItem(ctx, v, note)
}

func (s *NoteService) Create(ctx context.Context, userID uint64, req *types.NoteCreateRequest) (*types.NoteItem, error) {
	if err := checkTitle(&req.Title); err != nil {
		return nil, err
	}
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	note := &models.Note{
		ID:      snowflake.GenID(),
		Title:   req.Title,
		Content: req.Content,
		SharedState: models.SharedState{
			AuthorID: v.UserID,
			IsShared: true,
		},
	}
	if req.IsShared != nil {
		note.IsShared = *req.IsShared
	}
	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	if note.IsShared && v.PartnerID != 0 {
		s.Notify.Notify(context.WithoutCancel(ctx), v.User, &Message{
			Event:  EventNoteCreated,
			Title:  fmt.Sprintf("💕 New Note from %s", v.User.Username),
			Body:   quoted(note.Title),
			NoteID: note.ID,
		})
	}
	return s.toItem(ctx, v, note)
}

func (s *NoteService) Update(ctx context.Context, userID, noteID uint64, req *types.NoteUpdateRequest) (*NoteUpdateResult, error) {
	if err := checkTitle(req.Title); err != nil {
		return nil, err
	}
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		note    *models.Note
		outcome EditOutcome
	)
	err = s.NoteDAO.Transaction(ctx, func(tx *gorm.DB) error {
		notes := s.NoteDAO.WithDB(tx)
		n, err := notes.LockVisible(ctx, noteID, v.UserID, v.PartnerID)
		if err != nil {
			return notFound(err)
		}
		if !v.CanWrite(n.AuthorID) {
			return ErrForbidden
		}

		outcome, err = ApplyEdit(n, v, &EditProposal{
			Title:    req.Title,
			Content:  req.Content,
			IsShared: req.IsShared,
		})
		if err != nil {
			return err
		}
		note = n
		if outcome.Action == EditAlreadyRequested {
			return nil
		}
		return notes.Save(ctx, n)
	})
	if err != nil {
		return nil, err
	}

	log.L.Debug("note updated", zap.Uint64("note_id", noteID), zap.Uint64("user_id", userID), zap.Int("action", int(outcome.Action)))

	if outcome.Notify {
		s.Notify.Notify(context.WithoutCancel(ctx), v.User, &Message{
			Event:  EventNoteUpdated,
			Title:  fmt.Sprintf("✏️ Note Updated by %s", v.User.Username),
			Body:   quoted(note.Title),
			NoteID: note.ID,
		})
	}

	res := &NoteUpdateResult{Action: outcome.Action}
	if !outcome.Action.Pending() {
		if res.Note, err = s.toItem(ctx, v, note); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, noteID uint64) (DeleteAction, error) {
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return 0, err
	}

	var (
		note    *models.Note
		outcome DeleteOutcome
	)
	err = s.NoteDAO.Transaction(ctx, func(tx *gorm.DB) error {
		notes := s.NoteDAO.WithDB(tx)
		n, err := notes.LockVisible(ctx, noteID, v.UserID, v.PartnerID)
		if err != nil {
			return notFound(err)
		}
		if !v.CanWrite(n.AuthorID) {
			return ErrForbidden
		}

		outcome, err = ApplyDelete(&n.SharedState, v.UserID, v.Counterparty(&n.SharedState))
		if err != nil {
			return err
		}
		note = n

		switch outcome.Action {
		case DeleteRequested:
			return notes.Save(ctx, n)
		case DeleteImmediate:
			if err := notes.DeleteByID(ctx, n.ID); err != nil {
				return err
			}
		case DeleteApproved:
			rows, err := notes.DeleteApproved(ctx, n.ID, outcome.RequestedBy)
			if err != nil {
				return err
			}
			if rows == 0 {
				return ErrNotFound
			}
		default:
			return nil
		}
		return tx.Where("note_id = ?", n.ID).Delete(&models.NoteLike{}).Error
	})
	if err != nil {
		return 0, err
	}

	if outcome.Action.Removes() {
		log.L.Info("note deleted", zap.Uint64("note_id", noteID), zap.Uint64("user_id", userID))
	}
	if outcome.Notify {
		s.Notify.Notify(context.WithoutCancel(ctx), v.User, &Message{
			Event:  EventNoteDeletionRequested,
			Title:  fmt.Sprintf("🗑️ %s wants to delete a note", v.User.Username),
			Body:   quoted(note.Title),
			NoteID: note.ID,
			To:     outcome.Counterparty,
		})
	}
	return outcome.Action, nil
}

func (s *NoteService) toItem(ctx context.Context, v *Viewer, note *models.Note) (*types.NoteItem, error) {
	items, err := s.toItems(ctx, v, []*models.Note{note})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *NoteService) toItems(ctx context.Context, v *Viewer, notes []*models.Note) ([]*types.NoteItem, error) {
	ids := make([]uint64, 0, len(notes))
	userIDs := []uint64{v.UserID, v.PartnerID}
	for _, n := range notes {
		ids = append(ids, n.ID)
		userIDs = append(userIDs, stateUserIDs(&n.SharedState)...)
	}

	likes, err := s.NoteLikeDAO.ListByNoteIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	for _, l := range likes {
		userIDs = append(userIDs, l.UserID)
	}
	b, err := loadBriefs(ctx, s.UsersDAO, userIDs)
	if err != nil {
		return nil, err
	}

	byNote := make(map[uint64][]*models.NoteLike, len(notes))
	for _, l := range likes {
		byNote[l.NoteID] = append(byNote[l.NoteID], l)
	}

	items := make([]*types.NoteItem, 0, len(notes))
	for _, n := range notes {
		item := &types.NoteItem{
			ID:           n.ID,
			Title:        n.Title,
			Content:      n.Content,
			SharedFields: sharedFields(&n.SharedState, b),
			Likes:        make([]*types.NoteLikeItem, 0, len(byNote[n.ID])),
			CreatedAt:    n.CreatedAt,
			UpdatedAt:    n.UpdatedAt,
		}
		for _, l := range byNote[n.ID] {
			uid := l.UserID
			item.Likes = append(item.Likes, &types.NoteLikeItem{ID: l.ID, User: b.get(&uid), CreatedAt: l.CreatedAt})
			if l.UserID == v.UserID {
				item.IsLikedByCurrentUser = true
			}
		}
		item.LikeCount = len(item.Likes)
		items = append(items, item)
	}
	return items, nil
}
