package models

import "time"

// NoteLike 点赞记录
// 对应表 note_likes
// 唯一键: note_id + user_id，记录存在即为已点赞
type NoteLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NoteID    uint64    `gorm:"column:note_id;not null;uniqueIndex:uk_note_user,priority:1" json:"note_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_note_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (NoteLike) TableName() string { return "note_likes" }

// NoteLikeCount 按笔记聚合的点赞数
type NoteLikeCount struct {
	NoteID uint64 `gorm:"column:note_id"`
	Count  int64  `gorm:"column:cnt"`
}
