package dao

import (
	"LoveNote/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PushSubscriptionDAO struct {
	Repo[models.PushSubscription]
}

func NewPushSubscriptionDAO(db *gorm.DB) *PushSubscriptionDAO {
	return &PushSubscriptionDAO{Repo: NewRepo[models.PushSubscription](db)}
}

func (d *PushSubscriptionDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.PushSubscription, error) {
	var items []*models.PushSubscription
	err := d.Db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&items).Error
	return items, err
}

func (d *PushSubscriptionDAO) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return d.FindCount(ctx, "user_id = ?", userID)
}

// Upsert 同一用户同一 endpoint 只保留一条，已存在时更新密钥；created 表示是否新建
func (d *PushSubscriptionDAO) Upsert(ctx context.Context, sub *models.PushSubscription) (created bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exist models.PushSubscription
		err := tx.Where("user_id = ? AND endpoint = ?", sub.UserID, sub.Endpoint).First(&exist).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(sub).Error
		}
		if err != nil {
			return err
		}
		sub.ID = exist.ID
		sub.CreatedAt = exist.CreatedAt
		return tx.Model(&exist).Updates(map[string]any{
			"p256dh": sub.P256dh,
			"auth":   sub.Auth,
		}).Error
	})
	return created, err
}

// DeleteOwned 删除自己的订阅，返回是否删除
func (d *PushSubscriptionDAO) DeleteOwned(ctx context.Context, id, userID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.PushSubscription{})
	return res.RowsAffected > 0, res.Error
}

// DeleteByID 推送服务返回 404/410 时清理失效订阅
func (d *PushSubscriptionDAO) DeleteByID(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.PushSubscription{}).Error
}
