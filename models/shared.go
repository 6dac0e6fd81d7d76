package models

// SharedState 笔记和日记共用的共享/协商字段
//
// 编辑与删除各自一组请求人/同意人字段，待定的标题和内容在对方同意前不会写入正文。
type SharedState struct {
	AuthorID            uint64  `gorm:"column:author_id;not null" json:"author_id"`
	IsShared            bool    `gorm:"column:is_shared;not null" json:"is_shared"`
	DeletionRequestedBy *uint64 `gorm:"column:deletion_requested_by" json:"deletion_requested_by"`
	DeletionApprovedBy  *uint64 `gorm:"column:deletion_approved_by" json:"deletion_approved_by"`
	EditRequestedBy     *uint64 `gorm:"column:edit_requested_by" json:"edit_requested_by"`
	EditApprovedBy      *uint64 `gorm:"column:edit_approved_by" json:"edit_approved_by"`
	PendingTitle        *string `gorm:"column:pending_title;type:varchar(200)" json:"pending_title"`
	PendingContent      *string `gorm:"column:pending_content;type:text" json:"pending_content"`
}

func (s *SharedState) EditPending() bool {
	return s.EditRequestedBy != nil
}

func (s *SharedState) DeletionPending() bool {
	return s.DeletionRequestedBy != nil
}

// ClearEdit 清空待审批的编辑请求
func (s *SharedState) ClearEdit() {
	s.EditRequestedBy = nil
	s.PendingTitle = nil
	s.PendingContent = nil
}

// SharedItem 笔记与日记的公共视图
type SharedItem interface {
	GetID() uint64
	Shared() *SharedState
	GetTitle() string
	SetTitle(string)
	GetContent() string
	SetContent(string)
}
