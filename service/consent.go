package service

import (
	"LoveNote/models"
)

// EditProposal 一次更新请求携带的字段，nil 表示未提供
type EditProposal struct {
	Title    *string
	Content  *string
	IsShared *bool
	// Extra 是否还带了日期、心情等内容自身的字段
	Extra bool
}

func (p *EditProposal) empty() bool {
	return p.Title == nil && p.Content == nil && p.IsShared == nil && !p.Extra
}

// approves 作者提交的内容与待审批内容一致（或为空）时视为同意
func (p *EditProposal) approves(item models.SharedItem) bool {
	if p.empty() {
		return true
	}
	s := item.Shared()
	// is_shared 与当前一致不算改动
	if p.Extra || (p.IsShared != nil && *p.IsShared != s.IsShared) {
		return false
	}
	if p.Title != nil && *p.Title != stagedOr(s.PendingTitle, item.GetTitle()) {
		return false
	}
	if p.Content != nil && *p.Content != stagedOr(s.PendingContent, item.GetContent()) {
		return false
	}
	return true
}

func stagedOr(staged *string, current string) string {
	if staged != nil {
		return *staged
	}
	return current
}

type EditAction int

const (
	// EditApplied 作者直接编辑
	EditApplied EditAction = iota + 1
	// EditApproved 作者同意了对方的编辑请求
	EditApproved
	// EditRequested 非作者发起编辑请求，等待作者同意
	EditRequested
	// EditAlreadyRequested 重复发起，不做任何修改
	EditAlreadyRequested
)

func (a EditAction) Pending() bool {
	return a == EditRequested || a == EditAlreadyRequested
}

type EditOutcome struct {
	Action EditAction
	// Notify 是否给对方发送 *_updated
	Notify bool
}

// ApplyEdit 在内存中完成编辑状态迁移，调用方负责持久化
// 调用前需已确认 viewer 对 item 有写权限
func ApplyEdit(item models.SharedItem, v *Viewer, p *EditProposal) (EditOutcome, error) {
	s := item.Shared()

	if s.AuthorID == v.UserID {
		if s.EditRequestedBy != nil && *s.EditRequestedBy != v.UserID && p.approves(item) {
			item.SetTitle(stagedOr(s.PendingTitle, item.GetTitle()))
			item.SetContent(stagedOr(s.PendingContent, item.GetContent()))
			approver := v.UserID
			s.EditApprovedBy = &approver
			s.ClearEdit()
			return EditOutcome{Action: EditApproved, Notify: s.IsShared && v.PartnerID != 0}, nil
		}

		if p.Title != nil {
			item.SetTitle(*p.Title)
		}
		if p.Content != nil {
			item.SetContent(*p.Content)
		}
		if p.IsShared != nil {
			s.IsShared = *p.IsShared
		}
		s.ClearEdit()
		s.EditApprovedBy = nil
		return EditOutcome{Action: EditApplied, Notify: s.IsShared && v.PartnerID != 0}, nil
	}

	if s.EditRequestedBy != nil {
		if *s.EditRequestedBy == v.UserID {
			return EditOutcome{Action: EditAlreadyRequested}, nil
		}
		return EditOutcome{}, ErrInvalidEditState
	}
	if s.DeletionPending() {
		return EditOutcome{}, ErrInvalidEditState
	}

	title := stagedOr(p.Title, item.GetTitle())
	content := stagedOr(p.Content, item.GetContent())
	requester := v.UserID
	s.EditRequestedBy = &requester
	s.PendingTitle = &title
	s.PendingContent = &content
	return EditOutcome{Action: EditRequested}, nil
}

type DeleteAction int

const (
	// DeleteRequested 发起删除请求，等待对方同意
	DeleteRequested DeleteAction = iota + 1
	// DeleteAlreadyRequested 重复发起
	DeleteAlreadyRequested
	// DeleteImmediate 没有可以审批的另一方，直接删除
	DeleteImmediate
	// DeleteApproved 对方同意，删除
	DeleteApproved
)

func (a DeleteAction) Pending() bool {
	return a == DeleteRequested || a == DeleteAlreadyRequested
}

func (a DeleteAction) Removes() bool {
	return a == DeleteImmediate || a == DeleteApproved
}

type DeleteOutcome struct {
	Action DeleteAction
	// Notify 是否给 Counterparty 发送 *_deletion_requested
	Notify       bool
	Counterparty uint64
	// RequestedBy 审批删除时用于条件删除
	RequestedBy uint64
}

// ApplyDelete 删除状态迁移，counterparty 为 0 表示没人可以审批
func ApplyDelete(s *models.SharedState, actor, counterparty uint64) (DeleteOutcome, error) {
	if s.DeletionRequestedBy == nil {
		if counterparty == 0 {
			return DeleteOutcome{Action: DeleteImmediate}, nil
		}
		if s.EditPending() {
			return DeleteOutcome{}, ErrInvalidDeleteState
		}
		requester := actor
		s.DeletionRequestedBy = &requester
		return DeleteOutcome{Action: DeleteRequested, Notify: true, Counterparty: counterparty}, nil
	}

	requestedBy := *s.DeletionRequestedBy
	if requestedBy == actor {
		return DeleteOutcome{Action: DeleteAlreadyRequested}, nil
	}

	approver := actor
	s.DeletionApprovedBy = &approver
	return DeleteOutcome{Action: DeleteApproved, RequestedBy: requestedBy}, nil
}
