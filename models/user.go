package models

import "time"

type Users struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username    string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uk_username" json:"username"`
	Email       string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:uk_email" json:"email"`
	Password    string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	PartnerID   *uint64   `gorm:"column:partner_id;index:idx_partner_id" json:"partner_id"`
	PartnerCode *string   `gorm:"column:partner_code;type:varchar(20);uniqueIndex:uk_partner_code" json:"partner_code"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// Partner 当前配对对象ID，未配对返回 0
func (u *Users) Partner() uint64 {
	if u == nil || u.PartnerID == nil {
		return 0
	}
	return *u.PartnerID
}

func (u *Users) HasPartner() bool {
	return u.Partner() != 0
}
