package dao

import (
	"LoveNote/models"
	"context"

	"gorm.io/gorm"
)

type NoteLikeDAO struct {
	Repo[models.NoteLike]
}

func NewNoteLikeDAO(db *gorm.DB) *NoteLikeDAO {
	return &NoteLikeDAO{Repo: NewRepo[models.NoteLike](db)}
}

func (d *NoteLikeDAO) WithDB(db *gorm.DB) *NoteLikeDAO {
	nd := *d
	nd.Db = db
	return &nd
}

// Remove 删除点赞记录，返回是否删除了记录
func (d *NoteLikeDAO) Remove(ctx context.Context, noteID, userID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", noteID, userID).
		Delete(&models.NoteLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByNoteIDs 批量查询点赞记录，按点赞时间正序
func (d *NoteLikeDAO) ListByNoteIDs(ctx context.Context, noteIDs []uint64) ([]*models.NoteLike, error) {
	if len(noteIDs) == 0 {
		return []*models.NoteLike{}, nil
	}
	var likes []*models.NoteLike
	err := d.Db.WithContext(ctx).
		Where("note_id IN ?", noteIDs).
		Order("created_at ASC").
		Order("id ASC").
		Find(&likes).Error
	return likes, err
}
