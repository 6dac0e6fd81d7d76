package models

import "time"

type Note struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title   string `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Content string `gorm:"column:content;type:text" json:"content"`

	SharedState `gorm:"embedded"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index:idx_updated_at" json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) GetID() uint64 { return n.ID }
func (n *Note) Shared() *SharedState { return &n.SharedState }
func (n *Note) GetTitle() string { return n.Title }
func (n *Note) SetTitle(v string) { n.Title = v }
func (n *Note) GetContent() string { return n.Content }
func (n *Note) SetContent(v string) { n.Content = v }
