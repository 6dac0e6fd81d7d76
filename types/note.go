package types

import "time"

// SearchType 笔记搜索范围
const (
	SearchTitle   = "title"
	SearchContent = "content"
	SearchBoth    = "both"
)

type NoteListRequest struct {
	Search     string `form:"search"`
	SearchType string `form:"search_type"`
}

type NoteCreateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsShared *bool  `json:"is_shared"`
}

// NoteUpdateRequest 字段为空表示不修改
type NoteUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsShared *bool   `json:"is_shared"`
}

// SharedFields 笔记与日记共用的协商状态
type SharedFields struct {
	Author              *UserBrief `json:"author"`
	IsShared            bool       `json:"is_shared"`
	DeletionRequestedBy *UserBrief `json:"deletion_requested_by"`
	DeletionApprovedBy  *UserBrief `json:"deletion_approved_by"`
	EditRequestedBy     *UserBrief `json:"edit_requested_by"`
	EditApprovedBy      *UserBrief `json:"edit_approved_by"`
	PendingTitle        *string    `json:"pending_title"`
	PendingContent      *string    `json:"pending_content"`
}

type NoteLikeItem struct {
	ID        uint64     `json:"id"`
	User      *UserBrief `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

type NoteItem struct {
	ID      uint64 `json:"id,string"`
	Title   string `json:"title"`
	Content string `json:"content"`

	SharedFields

	Likes                []*NoteLikeItem `json:"likes"`
	LikeCount            int             `json:"like_count"`
	IsLikedByCurrentUser bool            `json:"is_liked_by_current_user"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// PendingResponse 编辑或删除进入待审批状态
type PendingResponse struct {
	Message           string `json:"message"`
	EditRequested     bool   `json:"edit_requested,omitempty"`
	DeletionRequested bool   `json:"deletion_requested,omitempty"`
}

type LikeToggleResponse struct {
	Message string `json:"message"`
	IsLiked bool   `json:"is_liked"`
}
