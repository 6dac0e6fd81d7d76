package config

import (
	"time"
)

// Reminder 日记提醒定时任务配置
type Reminder struct {
	Enabled  bool          `json:"enabled" yaml:"enabled" env:"REMINDER_ENABLED"`
	Interval time.Duration `json:"interval" yaml:"interval"`
	Timezone string        `json:"timezone" yaml:"timezone" env:"REMINDER_TIMEZONE"`
	// Window 提醒时间允许的误差（分钟）
	Window int `json:"window" yaml:"window"`
	// LockTTL 多实例部署时每轮扫描持有的 redis 锁时长
	LockTTL time.Duration `json:"lock_ttl" yaml:"lock_ttl"`
}

func (r Reminder) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func ProvideReminderConfig(cfg *Config) *Reminder {
	return &cfg.Reminder
}
