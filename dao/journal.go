package dao

import (
	"LoveNote/models"
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JournalDAO struct {
	Repo[models.JournalEntry]
}

func NewJournalDAO(db *gorm.DB) *JournalDAO {
	return &JournalDAO{Repo: NewRepo[models.JournalEntry](db)}
}

func (d *JournalDAO) WithDB(db *gorm.DB) *JournalDAO {
	nd := *d
	nd.Db = db
	return &nd
}

// ListVisible 可见日记，按日期、创建时间倒序
func (d *JournalDAO) ListVisible(ctx context.Context, userID, partnerID uint64) ([]*models.JournalEntry, error) {
	var entries []*models.JournalEntry
	err := d.Db.WithContext(ctx).
		Scopes(VisibleTo(userID, partnerID)).
		Order("date DESC").
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// ListVisibleByDate 某一天的可见日记
func (d *JournalDAO) ListVisibleByDate(ctx context.Context, userID, partnerID uint64, date datatypes.Date) ([]*models.JournalEntry, error) {
	var entries []*models.JournalEntry
	err := d.Db.WithContext(ctx).
		Scopes(VisibleTo(userID, partnerID)).
		Where("date = ?", date).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (d *JournalDAO) FindVisible(ctx context.Context, id, userID, partnerID uint64) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := d.Db.WithContext(ctx).Scopes(VisibleTo(userID, partnerID)).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (d *JournalDAO) LockVisible(ctx context.Context, id, userID, partnerID uint64) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := d.Db.WithContext(ctx).
		Scopes(VisibleTo(userID, partnerID), ForUpdate).
		Where("id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// IsDateTaken 作者在该日期是否已有日记，excludeID 用于更新时排除自身
func (d *JournalDAO) IsDateTaken(ctx context.Context, authorID uint64, date datatypes.Date, excludeID uint64) (bool, error) {
	return d.IsExist(ctx, "author_id = ? AND date = ? AND id <> ?", authorID, date, excludeID)
}

func (d *JournalDAO) Save(ctx context.Context, entry *models.JournalEntry) error {
	return d.Db.WithContext(ctx).Select("*").Omit("created_at").Save(entry).Error
}

func (d *JournalDAO) DeleteApproved(ctx context.Context, id, requestedBy uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("id = ? AND deletion_requested_by = ?", id, requestedBy).
		Delete(&models.JournalEntry{})
	return res.RowsAffected, res.Error
}

func (d *JournalDAO) DeleteByID(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.JournalEntry{}).Error
}
