package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReminderLock 多实例部署时，每分钟只允许一个实例执行日记提醒扫描
type ReminderLock struct {
	redis *redis.Client
	owner string
}

func NewReminderLock(rds *redis.Client) *ReminderLock {
	return &ReminderLock{redis: rds, owner: hostOwner()}
}

// TryLock 抢占指定分钟的扫描权
// @params minute  形如 2006-01-02T15:04
// @params ttl     锁过期时间，应小于扫描间隔
func (l *ReminderLock) TryLock(ctx context.Context, minute string, ttl time.Duration) (bool, error) {
	ok, err := l.redis.SetNX(ctx, l.name(minute), l.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache.ReminderLock.TryLock error: %w", err)
	}
	return ok, nil
}

func (l *ReminderLock) name(minute string) string {
	return fmt.Sprintf("lovenote:reminder:lock:%s", minute)
}
