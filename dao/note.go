package dao

import (
	"LoveNote/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

func (d *NoteDAO) WithDB(db *gorm.DB) *NoteDAO {
	nd := *d
	nd.Db = db
	return &nd
}

// NoteFilter 列表搜索条件
type NoteFilter struct {
	Search     string
	SearchType string // title / content / both
}

// ListVisible 可见笔记列表，按更新时间倒序
func (d *NoteDAO) ListVisible(ctx context.Context, userID, partnerID uint64, f NoteFilter) ([]*models.Note, error) {
	q := d.Db.WithContext(ctx).Scopes(VisibleTo(userID, partnerID))
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		switch f.SearchType {
		case "title":
			q = q.Where("LOWER(title) LIKE ?", like)
		case "content":
			q = q.Where("LOWER(content) LIKE ?", like)
		default:
			q = q.Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", like, like)
		}
	}
	var notes []*models.Note
	err := q.Order("updated_at DESC").Order("id DESC").Find(&notes).Error
	return notes, err
}

// FindVisible 单条可见笔记，不可见与不存在同样返回 gorm.ErrRecordNotFound
func (d *NoteDAO) FindVisible(ctx context.Context, id, userID, partnerID uint64) (*models.Note, error) {
	var note models.Note
	err := d.Db.WithContext(ctx).Scopes(VisibleTo(userID, partnerID)).Where("id = ?", id).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// LockVisible 事务内加锁读取
func (d *NoteDAO) LockVisible(ctx context.Context, id, userID, partnerID uint64) (*models.Note, error) {
	var note models.Note
	err := d.Db.WithContext(ctx).
		Scopes(VisibleTo(userID, partnerID), ForUpdate).
		Where("id = ?", id).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Save 写回正文与协商字段
func (d *NoteDAO) Save(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).Select("*").Omit("created_at").Save(note).Error
}

// DeleteApproved 仅当删除请求人未变时删除，返回受影响行数
func (d *NoteDAO) DeleteApproved(ctx context.Context, id, requestedBy uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("id = ? AND deletion_requested_by = ?", id, requestedBy).
		Delete(&models.Note{})
	return res.RowsAffected, res.Error
}

func (d *NoteDAO) DeleteByID(ctx context.Context, id uint64) error {
	return d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{}).Error
}
