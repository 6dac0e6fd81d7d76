package models

import (
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// JournalEntry 日记，每个作者每天最多一篇
// 唯一键 uk_author_date(author_id, date) 由迁移创建
type JournalEntry struct {
	ID      uint64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title   string         `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Content string         `gorm:"column:content;type:text" json:"content"`
	Date    datatypes.Date `gorm:"column:date;not null;index:idx_date" json:"date"`
	Mood    string         `gorm:"column:mood;type:varchar(50);not null;default:''" json:"mood"`

	SharedState `gorm:"embedded"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

func (j *JournalEntry) GetID() uint64 { return j.ID }
func (j *JournalEntry) Shared() *SharedState { return &j.SharedState }
func (j *JournalEntry) GetTitle() string { return j.Title }
func (j *JournalEntry) SetTitle(v string) { j.Title = v }
func (j *JournalEntry) GetContent() string { return j.Content }
func (j *JournalEntry) SetContent(v string) { j.Content = v }

// DateKey 日记日期，YYYY-MM-DD
func (j *JournalEntry) DateKey() string {
	return time.Time(j.Date).Format(DateLayout)
}

// NewDate 把 YYYY-MM-DD 解析为日记日期
func NewDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// Today 指定时区下的今天
func Today(loc *time.Location) datatypes.Date {
	now := time.Now().In(loc)
	return datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}
