package service

import (
	"LoveNote/dao"
	"LoveNote/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IVisibilityService = (*VisibilityService)(nil)

// Viewer 每个请求从数据库重新读取的身份，配对关系不放在 token 里
type Viewer struct {
	UserID    uint64
	PartnerID uint64
	User      *models.Users
}

// CanWrite 只有作者本人或作者的配对对象可以编辑、删除
func (v *Viewer) CanWrite(authorID uint64) bool {
	if authorID == v.UserID {
		return true
	}
	return v.PartnerID != 0 && authorID == v.PartnerID
}

// CanRead 与 dao.VisibleTo 的条件一致
func (v *Viewer) CanRead(state *models.SharedState) bool {
	if state.AuthorID == v.UserID {
		return true
	}
	return v.PartnerID != 0 && state.AuthorID == v.PartnerID && state.IsShared
}

// Counterparty 对该内容可以审批的另一方，没有时返回 0
func (v *Viewer) Counterparty(state *models.SharedState) uint64 {
	if state.AuthorID != v.UserID {
		return state.AuthorID
	}
	if v.PartnerID != 0 && state.IsShared {
		return v.PartnerID
	}
	return 0
}

type IVisibilityService interface {
	Resolve(ctx context.Context, userID uint64) (*Viewer, error)
}

type VisibilityService struct {
	UsersDAO *dao.Users
}

func (s *VisibilityService) Resolve(ctx context.Context, userID uint64) (*Viewer, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &Viewer{UserID: user.ID, PartnerID: user.Partner(), User: user}, nil
}
