package dao

import (
	"LoveNote/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

func (u *Users) WithDB(db *gorm.DB) *Users {
	nu := *u
	nu.Db = db
	return &nu
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// FindByPartnerCode 配对码查询
func (u *Users) FindByPartnerCode(ctx context.Context, code string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "partner_code = ?", code)
}

func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

func (u *Users) SetPartnerCode(ctx context.Context, userID uint64, code string) error {
	err := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Update("partner_code", code).Error
	if err != nil {
		return fmt.Errorf("dao.Users.SetPartnerCode error: %w", err)
	}
	return nil
}

// LockPair 按 id 升序锁定两行，避免两边同时配对时死锁
func (u *Users) LockPair(ctx context.Context, a, b uint64) (map[uint64]*models.Users, error) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make(map[uint64]*models.Users, 2)
	for _, id := range []uint64{lo, hi} {
		var item models.Users
		if err := u.Db.WithContext(ctx).Scopes(ForUpdate).First(&item, id).Error; err != nil {
			return nil, err
		}
		out[id] = &item
	}
	return out, nil
}

// LinkPartner 仅当 userID 当前未配对时写入 partner_id，返回受影响行数
func (u *Users) LinkPartner(ctx context.Context, userID, partnerID uint64) (int64, error) {
	res := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ? AND partner_id IS NULL", userID).
		Update("partner_id", partnerID)
	if res.Error != nil {
		return 0, fmt.Errorf("dao.Users.LinkPartner error: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// UnlinkPartner 清除 userID 的配对，pointsTo 非 0 时仅当仍指向 pointsTo 才清除
func (u *Users) UnlinkPartner(ctx context.Context, userID, pointsTo uint64) (int64, error) {
	q := u.Db.WithContext(ctx).Model(&models.Users{}).Where("id = ?", userID)
	if pointsTo != 0 {
		q = q.Where("partner_id = ?", pointsTo)
	}
	res := q.Update("partner_id", nil)
	if res.Error != nil {
		return 0, fmt.Errorf("dao.Users.UnlinkPartner error: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (u *Users) FindByIds(ctx context.Context, ids []uint64) ([]*models.Users, error) {
	if len(ids) == 0 {
		return []*models.Users{}, nil
	}
	var items []*models.Users
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}
