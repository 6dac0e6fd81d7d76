package service

import (
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/pkg/log"
	"LoveNote/pkg/snowflake"
	"LoveNote/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IJournalService = (*JournalService)(nil)

type IJournalService interface {
	List(ctx context.Context, userID uint64) ([]*types.JournalItem, error)
	// ByDate 某一天自己和对方共享的日记
	ByDate(ctx context.Context, userID uint64, date string) ([]*types.JournalItem, error)
	Detail(ctx context.Context, userID, entryID uint64) (*types.JournalItem, error)
	Create(ctx context.Context, userID uint64, req *types.JournalCreateRequest) (*types.JournalItem, error)
	Update(ctx context.Context, userID, entryID uint64, req *types.JournalUpdateRequest) (*JournalUpdateResult, error)
	Delete(ctx context.Context, userID, entryID uint64) (DeleteAction, error)
}

type JournalUpdateResult struct {
	Action EditAction
	Entry  *types.JournalItem
}

type JournalService struct {
	JournalDAO *dao.JournalDAO
	UsersDAO   *dao.Users
	Visibility IVisibilityService
	Notify     INotifyService
}

func parseDate(s string) (datatypes.Date, error) {
	d, err := models.NewDate(strings.TrimSpace(s))
	if err != nil {
		return d, ErrInvalidDate
	}
	return d, nil
}

func checkMood(mood *string) error {
	if mood != nil && utf8.RuneCountInString(*mood) > maxMoodLength {
		return ErrMoodTooLong
	}
	return nil
}

func (s *JournalService) List(ctx context.Context, userID uint64) ([]*types.JournalItem, error) {
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.JournalDAO.ListVisible(ctx, v.UserID, v.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	return s.toItems(ctx, v, entries)
}

func (s *JournalService) ByDate(ctx context.Context, userID uint64, date string) ([]*types.JournalItem, error) {
	if strings.TrimSpace(date) == "" {
		return nil, InvalidInput("date 参数不能为空")
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.JournalDAO.ListVisibleByDate(ctx, v.UserID, v.PartnerID, d)
	if err != nil {
		return nil, fmt.Errorf("list journal by date: %w", err)
	}
	return s.toItems(ctx, v, entries)
}

func (s *JournalService) Detail(ctx context.Context, userID, entryID uint64) (*types.JournalItem, error) {
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	entry, err := s.JournalDAO.FindVisible(ctx, entryID, v.UserID, v.PartnerID)
	if err != nil {
		return nil, notFound(err)
	}
	return s.toItem(ctx, v, entry)
}

func (s *JournalService) Create(ctx context.Context, userID uint64, req *types.JournalCreateRequest) (*types.JournalItem, error) {
	if err := checkTitle(&req.Title); err != nil {
		return nil, err
	}
	if err := checkMood(&req.Mood); err != nil {
		return nil, err
	}
	date := models.Today(time.UTC)
	if strings.TrimSpace(req.Date) != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		date = d
	}

	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	taken, err := s.JournalDAO.IsDateTaken(ctx, v.UserID, date, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrJournalDateTaken
	}

	entry := &models.JournalEntry{
		ID:      snowflake.GenID(),
		Title:   req.Title,
		Content: req.Content,
		Date:    date,
		Mood:    req.Mood,
		SharedState: models.SharedState{
			AuthorID: v.UserID,
			IsShared: true,
		},
	}
	if req.IsShared != nil {
		entry.IsShared = *req.IsShared
	}
	if err := s.JournalDAO.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrJournalDateTaken
		}
		return nil, fmt.Errorf("create journal: %w", err)
	}

	if entry.IsShared && v.PartnerID != 0 {
		s.Notify.Notify(context.WithoutCancel(ctx), v.User, &Message{
			Event:       EventJournalCreated,
			Title:       fmt.Sprintf("📔 New Journal Entry from %s", v.User.Username),
			Body:        fmt.Sprintf("Entry for %s", entry.DateKey()),
			JournalDate: entry.DateKey(),
		})
	}
	return s.toItem(ctx, v, entry)
}

func (s *JournalService) Update(ctx context.Context, userID, entryID uint64, req *types.JournalUpdateRequest) (*JournalUpdateResult, error) {
	if err := checkTitle(req.Title); err != nil {
		return nil, err
	}
	if err := checkMood(req.Mood); err != nil {
		return nil, err
	}
	var newDate *datatypes.Date
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		newDate = &d
	}

	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		entry   *models.JournalEntry
		outcome EditOutcome
	)
	err = s.JournalDAO.Transaction(ctx, func(tx *gorm.DB) error {
		entries := s.JournalDAO.WithDB(tx)
		e, err := entries.LockVisible(ctx, entryID, v.UserID, v.PartnerID)
		if err != nil {
			return notFound(err)
		}
		if !v.CanWrite(e.AuthorID) {
			return ErrForbidden
		}

		outcome, err = ApplyEdit(e, v, &EditProposal{
			Title:    req.Title,
			Content:  req.Content,
			IsShared: req.IsShared,
			Extra:    req.Date != nil || req.Mood != nil,
		})
		if err != nil {
			return err
		}
		entry = e
		if outcome.Action == EditAlreadyRequested {
			return nil
		}

		if outcome.Action == EditApplied {
			if req.Mood != nil {
				e.Mood = *req.Mood
			}
			if newDate != nil && time.Time(*newDate) != time.Time(e.Date) {
				taken, err := entries.IsDateTaken(ctx, e.AuthorID, *newDate, e.ID)
				if err != nil {
					return err
				}
				if taken {
					return ErrJournalDateTaken
				}
				e.Date = *newDate
			}
		}

		if err := entries.Save(ctx, e); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrJournalDateTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.L.Debug("journal updated", zap.Uint64("entry_id", entryID), zap.Uint64("user_id", userID), zap.Int("action", int(outcome.Action)))

	if outcome.Notify {
		s.Notify.Notify(context.WithoutCancel(ctx), v.User, &Message{
			Event:       EventJournalUpdated,
			Title:       fmt.Sprintf("✏️ Journal Updated by %s", v.User.Username),
			Body:        fmt.Sprintf("Entry for %s", entry.DateKey()),
			JournalDate: entry.DateKey(),
		})
	}

	res := &JournalUpdateResult{Action: outcome.Action}
	if !outcome.Action.Pending() {
		if res.Entry, err = s.toItem(ctx, v, entry); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *JournalService) Delete(ctx context.Context, userID, entryID uint64) (DeleteAction, error) {
	v, err := s.Visibility.Resolve(ctx, userID)
	if err != nil {
		return 0, err
	}

	var (
		entry   *models.JournalEntry
		outcome DeleteOutcome
	)
	err = s.JournalDAO.Transaction(ctx, func(tx *gorm.DB) error {
		entries := s.JournalDAO.WithDB(tx)
		e, err := entries.LockVisible(ctx, entryID, v.UserID, v.PartnerID)
		if err != nil {
			return notFound(err)
		}
		if !v.CanWrite(e.AuthorID) {
			return ErrForbidden
		}

		outcome, err = ApplyDelete(&e.SharedState, v.UserID, v.Counterparty(&e.SharedState))
		if err != nil {
			return err
		}
		entry = e

		switch outcome.Action {
		case DeleteRequested:
			return entries.Save(ctx, e)
		case DeleteImmediate:
			return entries.DeleteByID(ctx, e.ID)
		case DeleteApproved:
			rows, err := entries.DeleteApproved(ctx, e.ID, outcome.RequestedBy)
			if err != nil {
				return err
			}
			if rows == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if outcome.Action.Removes() {
		log.L.Info("journal deleted", zap.Uint64("entry_id", entryID), zap.Uint64("user_id", userID))
	}
	if outcome.Notify {
		s.Notify.Notify(context.WithoutCancel(ctx), v.User, &Message{
			Event:       EventJournalDeletionRequested,
			Title:       fmt.Sprintf("🗑️ %s wants to delete a journal entry", v.User.Username),
			Body:        fmt.Sprintf("Entry for %s", entry.DateKey()),
			JournalDate: entry.DateKey(),
			To:          outcome.Counterparty,
		})
	}
	return outcome.Action, nil
}

func (s *JournalService) toItem(ctx context.Context, v *Viewer, entry *models.JournalEntry) (*types.JournalItem, error) {
	items, err := s.toItems(ctx, v, []*models.JournalEntry{entry})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *JournalService) toItems(ctx context.Context, v *Viewer, entries []*models.JournalEntry) ([]*types.JournalItem, error) {
	userIDs := []uint64{v.UserID, v.PartnerID}
	for _, e := range entries {
		userIDs = append(userIDs, stateUserIDs(&e.SharedState)...)
	}
	b, err := loadBriefs(ctx, s.UsersDAO, userIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.JournalItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, &types.JournalItem{
			ID:           e.ID,
			Title:        e.Title,
			Content:      e.Content,
			Date:         e.DateKey(),
			Mood:         e.Mood,
			SharedFields: sharedFields(&e.SharedState, b),
			CreatedAt:    e.CreatedAt,
			UpdatedAt:    e.UpdatedAt,
		})
	}
	return items, nil
}
