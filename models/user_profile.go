package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultReminderTime 默认每晚 21:00 提醒写日记
var DefaultReminderTime = datatypes.NewTime(21, 0, 0, 0)

// UserProfile 用户资料与通知偏好，每个用户一条，首次访问时创建
type UserProfile struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID uint64 `gorm:"column:user_id;not null;uniqueIndex:uk_user_id" json:"user_id"`

	Bio                     string          `gorm:"column:bio;type:text" json:"bio"`
	Birthday                *datatypes.Date `gorm:"column:birthday" json:"birthday"`
	Location                string          `gorm:"column:location;type:varchar(200);not null;default:''" json:"location"`
	Phone                   string          `gorm:"column:phone;type:varchar(20);not null;default:''" json:"phone"`
	FavoriteColor           string          `gorm:"column:favorite_color;type:varchar(50);not null;default:''" json:"favorite_color"`
	FavoriteFood            string          `gorm:"column:favorite_food;type:varchar(100);not null;default:''" json:"favorite_food"`
	FavoriteMovie           string          `gorm:"column:favorite_movie;type:varchar(200);not null;default:''" json:"favorite_movie"`
	FavoriteSong            string          `gorm:"column:favorite_song;type:varchar(200);not null;default:''" json:"favorite_song"`
	FavoritePlace           string          `gorm:"column:favorite_place;type:varchar(200);not null;default:''" json:"favorite_place"`
	Hobbies                 string          `gorm:"column:hobbies;type:text" json:"hobbies"`
	RelationshipAnniversary *datatypes.Date `gorm:"column:relationship_anniversary" json:"relationship_anniversary"`
	LoveLanguage            string          `gorm:"column:love_language;type:varchar(100);not null;default:''" json:"love_language"`
	PersonalNotes           string          `gorm:"column:personal_notes;type:text" json:"personal_notes"`

	ShareBio                     bool `gorm:"column:share_bio;not null" json:"share_bio"`
	ShareBirthday                bool `gorm:"column:share_birthday;not null" json:"share_birthday"`
	ShareLocation                bool `gorm:"column:share_location;not null" json:"share_location"`
	SharePhone                   bool `gorm:"column:share_phone;not null" json:"share_phone"`
	ShareFavoriteColor           bool `gorm:"column:share_favorite_color;not null" json:"share_favorite_color"`
	ShareFavoriteFood            bool `gorm:"column:share_favorite_food;not null" json:"share_favorite_food"`
	ShareFavoriteMovie           bool `gorm:"column:share_favorite_movie;not null" json:"share_favorite_movie"`
	ShareFavoriteSong            bool `gorm:"column:share_favorite_song;not null" json:"share_favorite_song"`
	ShareFavoritePlace           bool `gorm:"column:share_favorite_place;not null" json:"share_favorite_place"`
	ShareHobbies                 bool `gorm:"column:share_hobbies;not null" json:"share_hobbies"`
	ShareRelationshipAnniversary bool `gorm:"column:share_relationship_anniversary;not null" json:"share_relationship_anniversary"`
	ShareLoveLanguage            bool `gorm:"column:share_love_language;not null" json:"share_love_language"`
	SharePersonalNotes           bool `gorm:"column:share_personal_notes;not null" json:"share_personal_notes"`

	NotificationPreferences `gorm:"embedded"`

	// LastReminderOn 最近一次发送日记提醒的日期 YYYY-MM-DD
	LastReminderOn string    `gorm:"column:last_reminder_on;type:varchar(10);not null;default:''" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// NotificationPreferences 推送通知开关
type NotificationPreferences struct {
	NotificationsEnabled           bool           `gorm:"column:notifications_enabled;not null" json:"notifications_enabled"`
	NotifyNoteCreated              bool           `gorm:"column:notify_note_created;not null" json:"notify_note_created"`
	NotifyNoteUpdated              bool           `gorm:"column:notify_note_updated;not null" json:"notify_note_updated"`
	NotifyNoteLiked                bool           `gorm:"column:notify_note_liked;not null" json:"notify_note_liked"`
	NotifyNoteDeletionRequested    bool           `gorm:"column:notify_note_deletion_requested;not null" json:"notify_note_deletion_requested"`
	NotifyJournalCreated           bool           `gorm:"column:notify_journal_created;not null" json:"notify_journal_created"`
	NotifyJournalUpdated           bool           `gorm:"column:notify_journal_updated;not null" json:"notify_journal_updated"`
	NotifyJournalDeletionRequested bool           `gorm:"column:notify_journal_deletion_requested;not null" json:"notify_journal_deletion_requested"`
	NotifyJournalReminder          bool           `gorm:"column:notify_journal_reminder;not null" json:"notify_journal_reminder"`
	JournalReminderTime            datatypes.Time `gorm:"column:journal_reminder_time;not null" json:"journal_reminder_time"`
}

// NewUserProfile 带默认偏好的新资料：总开关关闭，各事件开关打开
func NewUserProfile(userID uint64) *UserProfile {
	return &UserProfile{
		UserID: userID,
		NotificationPreferences: NotificationPreferences{
			NotifyNoteCreated:              true,
			NotifyNoteUpdated:              true,
			NotifyNoteLiked:                true,
			NotifyNoteDeletionRequested:    true,
			NotifyJournalCreated:           true,
			NotifyJournalUpdated:           true,
			NotifyJournalDeletionRequested: true,
			NotifyJournalReminder:          true,
			JournalReminderTime:            DefaultReminderTime,
		},
	}
}
