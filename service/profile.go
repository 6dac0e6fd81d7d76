package service

import (
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/types"
	"context"
	"strings"
	"time"

	"gorm.io/datatypes"
)

var _ IProfileService = (*ProfileService)(nil)

type IProfileService interface {
	// Get 获取资料，不存在时按默认偏好创建
	Get(ctx context.Context, userID uint64) (*types.ProfileResponse, error)
	Update(ctx context.Context, userID uint64, req *types.ProfileUpdateRequest) (*types.ProfileResponse, error)
}

type ProfileService struct {
	ProfileDAO *dao.ProfileDAO
}

func (s *ProfileService) Get(ctx context.Context, userID uint64) (*types.ProfileResponse, error) {
	profile, err := s.ProfileDAO.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (s *ProfileService) Update(ctx context.Context, userID uint64, req *types.ProfileUpdateRequest) (*types.ProfileResponse, error) {
	if _, err := s.ProfileDAO.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	updates, err := profileUpdates(req)
	if err != nil {
		return nil, err
	}
	if err := s.ProfileDAO.UpdateByUserID(ctx, userID, updates); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

func profileUpdates(req *types.ProfileUpdateRequest) (map[string]any, error) {
	updates := make(map[string]any)

	strs := map[string]*string{
		"bio":            req.Bio,
		"location":       req.Location,
		"phone":          req.Phone,
		"favorite_color": req.FavoriteColor,
		"favorite_food":  req.FavoriteFood,
		"favorite_movie": req.FavoriteMovie,
		"favorite_song":  req.FavoriteSong,
		"favorite_place": req.FavoritePlace,
		"hobbies":        req.Hobbies,
		"love_language":  req.LoveLanguage,
		"personal_notes": req.PersonalNotes,
	}
	for col, v := range strs {
		if v != nil {
			updates[col] = *v
		}
	}

	dates := map[string]*string{
		"birthday":                 req.Birthday,
		"relationship_anniversary": req.RelationshipAnniversary,
	}
	for col, v := range dates {
		if v == nil {
			continue
		}
		if strings.TrimSpace(*v) == "" {
			updates[col] = nil
			continue
		}
		d, err := models.NewDate(strings.TrimSpace(*v))
		if err != nil {
			return nil, ErrInvalidDate
		}
		updates[col] = d
	}

	flags := map[string]*bool{
		"share_bio":                         req.ShareBio,
		"share_birthday":                    req.ShareBirthday,
		"share_location":                    req.ShareLocation,
		"share_phone":                       req.SharePhone,
		"share_favorite_color":              req.ShareFavoriteColor,
		"share_favorite_food":               req.ShareFavoriteFood,
		"share_favorite_movie":              req.ShareFavoriteMovie,
		"share_favorite_song":               req.ShareFavoriteSong,
		"share_favorite_place":              req.ShareFavoritePlace,
		"share_hobbies":                     req.ShareHobbies,
		"share_relationship_anniversary":    req.ShareRelationshipAnniversary,
		"share_love_language":               req.ShareLoveLanguage,
		"share_personal_notes":              req.SharePersonalNotes,
		"notifications_enabled":             req.NotificationsEnabled,
		"notify_note_created":               req.NotifyNoteCreated,
		"notify_note_updated":               req.NotifyNoteUpdated,
		"notify_note_liked":                 req.NotifyNoteLiked,
		"notify_note_deletion_requested":    req.NotifyNoteDeletionRequested,
		"notify_journal_created":            req.NotifyJournalCreated,
		"notify_journal_updated":            req.NotifyJournalUpdated,
		"notify_journal_deletion_requested": req.NotifyJournalDeletionRequested,
		"notify_journal_reminder":           req.NotifyJournalReminder,
	}
	for col, v := range flags {
		if v != nil {
			updates[col] = *v
		}
	}

	if req.JournalReminderTime != nil {
		t, err := ParseReminderTime(*req.JournalReminderTime)
		if err != nil {
			return nil, err
		}
		updates["journal_reminder_time"] = t
	}
	return updates, nil
}

// ParseReminderTime 支持 HH:MM 和 HH:MM:SS
func ParseReminderTime(s string) (datatypes.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, InvalidInput("提醒时间格式应为 HH:MM")
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(models.DateLayout)
	return &s
}

func personalFields(p *models.UserProfile) types.PersonalFields {
	return types.PersonalFields{
		Bio:                     p.Bio,
		Birthday:                formatDate(p.Birthday),
		Location:                p.Location,
		Phone:                   p.Phone,
		FavoriteColor:           p.FavoriteColor,
		FavoriteFood:            p.FavoriteFood,
		FavoriteMovie:           p.FavoriteMovie,
		FavoriteSong:            p.FavoriteSong,
		FavoritePlace:           p.FavoritePlace,
		Hobbies:                 p.Hobbies,
		RelationshipAnniversary: formatDate(p.RelationshipAnniversary),
		LoveLanguage:            p.LoveLanguage,
		PersonalNotes:           p.PersonalNotes,
	}
}

func toProfileResponse(p *models.UserProfile) *types.ProfileResponse {
	return &types.ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		PersonalFields: personalFields(p),
		ShareFlags: types.ShareFlags{
			ShareBio:                     p.ShareBio,
			ShareBirthday:                p.ShareBirthday,
			ShareLocation:                p.ShareLocation,
			SharePhone:                   p.SharePhone,
			ShareFavoriteColor:           p.ShareFavoriteColor,
			ShareFavoriteFood:            p.ShareFavoriteFood,
			ShareFavoriteMovie:           p.ShareFavoriteMovie,
			ShareFavoriteSong:            p.ShareFavoriteSong,
			ShareFavoritePlace:           p.ShareFavoritePlace,
			ShareHobbies:                 p.ShareHobbies,
			ShareRelationshipAnniversary: p.ShareRelationshipAnniversary,
			ShareLoveLanguage:            p.ShareLoveLanguage,
			SharePersonalNotes:           p.SharePersonalNotes,
		},
		NotificationSettings: types.NotificationSettings{
			NotificationsEnabled:           p.NotificationsEnabled,
			NotifyNoteCreated:              p.NotifyNoteCreated,
			NotifyNoteUpdated:              p.NotifyNoteUpdated,
			NotifyNoteLiked:                p.NotifyNoteLiked,
			NotifyNoteDeletionRequested:    p.NotifyNoteDeletionRequested,
			NotifyJournalCreated:           p.NotifyJournalCreated,
			NotifyJournalUpdated:           p.NotifyJournalUpdated,
			NotifyJournalDeletionRequested: p.NotifyJournalDeletionRequested,
			NotifyJournalReminder:          p.NotifyJournalReminder,
			JournalReminderTime:            p.JournalReminderTime.String(),
		},
		UpdatedAt: p.UpdatedAt,
	}
}
