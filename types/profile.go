package types

import "time"

// PersonalFields 个人资料，日期均为 YYYY-MM-DD
type PersonalFields struct {
	Bio                     string  `json:"bio"`
	Birthday                *string `json:"birthday"`
	Location                string  `json:"location"`
	Phone                   string  `json:"phone"`
	FavoriteColor           string  `json:"favorite_color"`
	FavoriteFood            string  `json:"favorite_food"`
	FavoriteMovie           string  `json:"favorite_movie"`
	FavoriteSong            string  `json:"favorite_song"`
	FavoritePlace           string  `json:"favorite_place"`
	Hobbies                 string  `json:"hobbies"`
	RelationshipAnniversary *string `json:"relationship_anniversary"`
	LoveLanguage            string  `json:"love_language"`
	PersonalNotes           string  `json:"personal_notes"`
}

type ShareFlags struct {
	ShareBio                     bool `json:"share_bio"`
	ShareBirthday                bool `json:"share_birthday"`
	ShareLocation                bool `json:"share_location"`
	SharePhone                   bool `json:"share_phone"`
	ShareFavoriteColor           bool `json:"share_favorite_color"`
	ShareFavoriteFood            bool `json:"share_favorite_food"`
	ShareFavoriteMovie           bool `json:"share_favorite_movie"`
	ShareFavoriteSong            bool `json:"share_favorite_song"`
	ShareFavoritePlace           bool `json:"share_favorite_place"`
	ShareHobbies                 bool `json:"share_hobbies"`
	ShareRelationshipAnniversary bool `json:"share_relationship_anniversary"`
	ShareLoveLanguage            bool `json:"share_love_language"`
	SharePersonalNotes           bool `json:"share_personal_notes"`
}

type NotificationSettings struct {
	NotificationsEnabled           bool   `json:"notifications_enabled"`
	NotifyNoteCreated              bool   `json:"notify_note_created"`
	NotifyNoteUpdated              bool   `json:"notify_note_updated"`
	NotifyNoteLiked                bool   `json:"notify_note_liked"`
	NotifyNoteDeletionRequested    bool   `json:"notify_note_deletion_requested"`
	NotifyJournalCreated           bool   `json:"notify_journal_created"`
	NotifyJournalUpdated           bool   `json:"notify_journal_updated"`
	NotifyJournalDeletionRequested bool   `json:"notify_journal_deletion_requested"`
	NotifyJournalReminder          bool   `json:"notify_journal_reminder"`
	JournalReminderTime            string `json:"journal_reminder_time"`
}

type ProfileResponse struct {
	ID     uint64 `json:"id"`
	UserID uint64 `json:"user"`

	PersonalFields
	ShareFlags
	NotificationSettings

	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdateRequest 部分更新，未提供的字段保持不变
type ProfileUpdateRequest struct {
	Bio                     *string `json:"bio"`
	Birthday                *string `json:"birthday"`
	Location                *string `json:"location"`
	Phone                   *string `json:"phone"`
	FavoriteColor           *string `json:"favorite_color"`
	FavoriteFood            *string `json:"favorite_food"`
	FavoriteMovie           *string `json:"favorite_movie"`
	FavoriteSong            *string `json:"favorite_song"`
	FavoritePlace           *string `json:"favorite_place"`
	Hobbies                 *string `json:"hobbies"`
	RelationshipAnniversary *string `json:"relationship_anniversary"`
	LoveLanguage            *string `json:"love_language"`
	PersonalNotes           *string `json:"personal_notes"`

	ShareBio                     *bool `json:"share_bio"`
	ShareBirthday                *bool `json:"share_birthday"`
	ShareLocation                *bool `json:"share_location"`
	SharePhone                   *bool `json:"share_phone"`
	ShareFavoriteColor           *bool `json:"share_favorite_color"`
	ShareFavoriteFood            *bool `json:"share_favorite_food"`
	ShareFavoriteMovie           *bool `json:"share_favorite_movie"`
	ShareFavoriteSong            *bool `json:"share_favorite_song"`
	ShareFavoritePlace           *bool `json:"share_favorite_place"`
	ShareHobbies                 *bool `json:"share_hobbies"`
	ShareRelationshipAnniversary *bool `json:"share_relationship_anniversary"`
	ShareLoveLanguage            *bool `json:"share_love_language"`
	SharePersonalNotes           *bool `json:"share_personal_notes"`

	NotificationsEnabled           *bool   `json:"notifications_enabled"`
	NotifyNoteCreated              *bool   `json:"notify_note_created"`
	NotifyNoteUpdated              *bool   `json:"notify_note_updated"`
	NotifyNoteLiked                *bool   `json:"notify_note_liked"`
	NotifyNoteDeletionRequested    *bool   `json:"notify_note_deletion_requested"`
	NotifyJournalCreated           *bool   `json:"notify_journal_created"`
	NotifyJournalUpdated           *bool   `json:"notify_journal_updated"`
	NotifyJournalDeletionRequested *bool   `json:"notify_journal_deletion_requested"`
	NotifyJournalReminder          *bool   `json:"notify_journal_reminder"`
	JournalReminderTime            *string `json:"journal_reminder_time"` // HH:MM 或 HH:MM:SS
}
