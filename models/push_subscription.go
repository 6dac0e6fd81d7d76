package models

import "time"

// PushSubscription 浏览器推送订阅，一个用户可以有多台设备
type PushSubscription struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_endpoint,priority:1" json:"user_id"`
	Endpoint  string    `gorm:"column:endpoint;type:varchar(500);not null;uniqueIndex:uk_user_endpoint,priority:2" json:"endpoint"`
	P256dh    string    `gorm:"column:p256dh;type:varchar(255);not null" json:"-"`
	Auth      string    `gorm:"column:auth;type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PushSubscription) TableName() string {
	return "push_subscriptions"
}
