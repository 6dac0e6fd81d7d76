package service

import (
	"LoveNote/config"
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/pkg/log"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

var _ IReminderService = (*ReminderService)(nil)

const (
	reminderTitle = "📔 Time to Write Your Journal"
	reminderBody  = "Don't forget to add today's journal entry! 💕"
	minuteLayout  = "2006-01-02T15:04"
)

// ReminderLocker 多实例之间的扫描锁
type ReminderLocker interface {
	TryLock(ctx context.Context, minute string, ttl time.Duration) (bool, error)
}

// ReminderReport 一轮扫描的统计
type ReminderReport struct {
	Candidates int `json:"candidates"`
	Due        int `json:"due"`
	Skipped    int `json:"skipped"`
	Duplicate  int `json:"duplicate"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
}

type IReminderService interface {
	// Sweep 对到点的用户发送日记提醒，每人每天最多一次
	Sweep(ctx context.Context, now time.Time) (*ReminderReport, error)
	// Run 按配置间隔循环扫描，直到 ctx 结束
	Run(ctx context.Context) error
}

type ReminderService struct {
	Conf                *config.Reminder
	ProfileDAO          *dao.ProfileDAO
	PushSubscriptionDAO *dao.PushSubscriptionDAO
	UsersDAO            *dao.Users
	Notify              INotifyService
	Locker              ReminderLocker
}

// minuteDistance 一天内两个分钟数的环形距离，23:59 与 00:00 相差 1
func minuteDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 720 {
		d = 1440 - d
	}
	return d
}

func reminderMinute(p *models.UserProfile) int {
	return int(time.Duration(p.JournalReminderTime) / time.Minute)
}

// reminderDay 本次命中的提醒所属日期，跨零点命中时归到提醒时间所在的那一天
func reminderDay(local time.Time, nowMinute, remindAt int) string {
	switch d := nowMinute - remindAt; {
	case d > 720:
		local = local.AddDate(0, 0, 1)
	case d < -720:
		local = local.AddDate(0, 0, -1)
	}
	return local.Format(models.DateLayout)
}

func (s *ReminderService) Sweep(ctx context.Context, now time.Time) (*ReminderReport, error) {
	local := now.In(s.Conf.Location())
	today := local.Format(models.DateLayout)
	nowMinute := local.Hour()*60 + local.Minute()

	profiles, err := s.ProfileDAO.ListReminderCandidates(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReminderReport{Candidates: len(profiles)}
	for _, p := range profiles {
		remindAt := reminderMinute(p)
		if minuteDistance(nowMinute, remindAt) > s.Conf.Window {
			continue
		}
		report.Due++

		r, err := s.remind(ctx, p, reminderDay(local, nowMinute, remindAt))
		switch {
		case errors.Is(err, errReminderClaimed):
			report.Duplicate++
		case err != nil:
			log.L.Error("journal reminder", zap.Uint64("user_id", p.UserID), zap.Error(err))
			report.Failed++
		case r == nil:
			report.Skipped++
		default:
			report.Sent += r.Sent
			report.Failed += r.Failed
		}
	}

	log.L.Info("journal reminder sweep",
		zap.String("date", today),
		zap.String("time", local.Format("15:04")),
		zap.Int("due", report.Due),
		zap.Int("sent", report.Sent),
		zap.Int("skipped", report.Skipped),
		zap.Int("duplicate", report.Duplicate),
	)
	return report, nil
}

// remind 没有订阅时返回 nil, nil
func (s *ReminderService) remind(ctx context.Context, p *models.UserProfile, day string) (*Report, error) {
	userID := p.UserID
	n, err := s.PushSubscriptionDAO.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	claimed, err := s.ProfileDAO.ClaimReminder(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, errReminderClaimed
	}

	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		s.release(ctx, p, day)
		return nil, err
	}
	r := s.Notify.Notify(ctx, user, &Message{
		Event:       EventJournalReminder,
		Title:       reminderTitle,
		Body:        reminderBody,
		JournalDate: day,
		To:          userID,
	})
	// 一个都没送达时撤销标记，窗口内的下一轮扫描会重试
	if r.Sent == 0 && r.Failed > 0 {
		s.release(ctx, p, day)
	}
	return &r, nil
}

func (s *ReminderService) release(ctx context.Context, p *models.UserProfile, day string) {
	if err := s.ProfileDAO.ReleaseReminder(ctx, p.UserID, day, p.LastReminderOn); err != nil {
		log.L.Warn("journal reminder release", zap.Uint64("user_id", p.UserID), zap.Error(err))
	}
}

func (s *ReminderService) Run(ctx context.Context) error {
	if !s.Conf.Enabled {
		log.L.Info("journal reminder disabled")
		return nil
	}

	ticker := time.NewTicker(s.Conf.Interval)
	defer ticker.Stop()

	log.L.Info("journal reminder started", zap.Duration("interval", s.Conf.Interval), zap.String("timezone", s.Conf.Location().String()))
	s.tick(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			s.tick(ctx, now)
		}
	}
}

func (s *ReminderService) tick(ctx context.Context, now time.Time) {
	minute := now.In(s.Conf.Location()).Format(minuteLayout)
	if s.Locker != nil {
		ok, err := s.Locker.TryLock(ctx, minute, s.Conf.LockTTL)
		switch {
		case err != nil:
			// 锁不可用时仍然扫描，由当天标记去重
			log.L.Warn("journal reminder lock", zap.Error(err))
		case !ok:
			log.L.Debug("journal reminder locked by another instance", zap.String("minute", minute))
			return
		}
	}
	if _, err := s.Sweep(ctx, now); err != nil {
		log.L.Error("journal reminder sweep", zap.Error(err))
	}
}
