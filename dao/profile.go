package dao

import (
	"LoveNote/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ProfileDAO struct {
	Repo[models.UserProfile]
}

func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{Repo: NewRepo[models.UserProfile](db)}
}

// FindByUserID 不存在时返回 nil, nil
func (d *ProfileDAO) FindByUserID(ctx context.Context, userID uint64) (*models.UserProfile, error) {
	var item models.UserProfile
	err := d.Db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, fmt.Errorf("dao.Profile.FindByUserID error: %w", err)
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// GetOrCreate 不存在时按默认偏好创建
func (d *ProfileDAO) GetOrCreate(ctx context.Context, userID uint64) (*models.UserProfile, error) {
	item, err := d.FindByUserID(ctx, userID)
	if err != nil || item != nil {
		return item, err
	}
	item = models.NewUserProfile(userID)
	if err := d.Db.WithContext(ctx).Create(item).Error; err != nil {
		// 并发创建时另一方已写入
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return d.FindByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("dao.Profile.GetOrCreate error: %w", err)
	}
	return item, nil
}

func (d *ProfileDAO) UpdateByUserID(ctx context.Context, userID uint64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	err := d.Db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(data).Error
	if err != nil {
		return fmt.Errorf("dao.Profile.UpdateByUserID error: %w", err)
	}
	return nil
}

// ListReminderCandidates 开启了通知且开启了日记提醒的资料
func (d *ProfileDAO) ListReminderCandidates(ctx context.Context) ([]*models.UserProfile, error) {
	var items []*models.UserProfile
	err := d.Db.WithContext(ctx).
		Where("notifications_enabled = ? AND notify_journal_reminder = ?", true, true).
		Order("user_id ASC").
		Find(&items).Error
	return items, err
}

// ClaimReminder 标记当天已提醒，只有第一次调用返回 true
func (d *ProfileDAO) ClaimReminder(ctx context.Context, userID uint64, today string) (bool, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ? AND last_reminder_on <> ?", userID, today).
		Update("last_reminder_on", today)
	if res.Error != nil {
		return false, fmt.Errorf("dao.Profile.ClaimReminder error: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ReleaseReminder 撤销当天的提醒标记，恢复为 prev，仅在标记仍为 day 时生效
func (d *ProfileDAO) ReleaseReminder(ctx context.Context, userID uint64, day, prev string) error {
	err := d.Db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("user_id = ? AND last_reminder_on = ?", userID, day).
		Update("last_reminder_on", prev).Error
	if err != nil {
		return fmt.Errorf("dao.Profile.ReleaseReminder error: %w", err)
	}
	return nil
}
