package types

import "time"

type JournalCreateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"` // YYYY-MM-DD，为空时取今天
	Mood     string `json:"mood"`
	IsShared *bool  `json:"is_shared"`
}

type JournalUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Date     *string `json:"date"`
	Mood     *string `json:"mood"`
	IsShared *bool   `json:"is_shared"`
}

type JournalByDateRequest struct {
	Date string `form:"date"`
}

type JournalItem struct {
	ID      uint64 `json:"id,string"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Mood    string `json:"mood"`

	SharedFields

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
