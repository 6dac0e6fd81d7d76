package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VisibleTo 当前用户可读的内容：自己写的，或者配对对象写的且已共享
func VisibleTo(userID, partnerID uint64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if partnerID == 0 {
			return db.Where("author_id = ?", userID)
		}
		return db.Where("(author_id = ? OR (author_id = ? AND is_shared = ?))", userID, partnerID, true)
	}
}

// ForUpdate 事务内锁行，sqlite 下忽略
func ForUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
