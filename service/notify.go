package service

import (
	"LoveNote/config"
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/pkg/log"
	"LoveNote/pkg/push"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var _ INotifyService = (*NotifyService)(nil)

// Event 推送事件类型
type Event string

const (
	EventNoteCreated              Event = "note_created"
	EventNoteUpdated              Event = "note_updated"
	EventNoteLiked                Event = "note_liked"
	EventNoteDeletionRequested    Event = "note_deletion_requested"
	EventJournalCreated           Event = "journal_created"
	EventJournalUpdated           Event = "journal_updated"
	EventJournalDeletionRequested Event = "journal_deletion_requested"
	EventJournalReminder          Event = "journal_reminder"
)

// Enabled 接收方是否开启了该事件，未知事件默认开启
func (e Event) Enabled(p *models.UserProfile) bool {
	switch e {
	case EventNoteCreated:
		return p.NotifyNoteCreated
	case EventNoteUpdated:
		return p.NotifyNoteUpdated
	case EventNoteLiked:
		return p.NotifyNoteLiked
	case EventNoteDeletionRequested:
		return p.NotifyNoteDeletionRequested
	case EventJournalCreated:
		return p.NotifyJournalCreated
	case EventJournalUpdated:
		return p.NotifyJournalUpdated
	case EventJournalDeletionRequested:
		return p.NotifyJournalDeletionRequested
	case EventJournalReminder:
		return p.NotifyJournalReminder
	}
	return true
}

// Message 一条待发送的通知
type Message struct {
	Event       Event
	Title       string
	Body        string
	NoteID      uint64
	JournalDate string
	// To 非 0 时直接发给该用户，否则发给 from 的配对对象
	To uint64
}

func (m *Message) itemKey() string {
	switch {
	case m.NoteID != 0:
		return fmt.Sprintf("%d", m.NoteID)
	case m.JournalDate != "":
		return m.JournalDate
	}
	return "none"
}

func (m *Message) data() map[string]any {
	data := map[string]any{"type": string(m.Event), "url": "/"}
	if m.NoteID != 0 {
		data["note_id"] = m.itemKey()
		data["url"] = "/notes"
	}
	if m.JournalDate != "" {
		data["journal_date"] = m.JournalDate
		data["url"] = "/journal"
	}
	return data
}

// Report 一次通知的投递汇总
type Report struct {
	Sent    int
	Failed  int
	Removed int
}

type INotifyService interface {
	// Notify 投递失败只记录日志，不返回错误
	Notify(ctx context.Context, from *models.Users, msg *Message) Report
}

type NotifyService struct {
	ProfileDAO          *dao.ProfileDAO
	PushSubscriptionDAO *dao.PushSubscriptionDAO
	Sender              push.Sender
	Conf                *config.Push
}

func (s *NotifyService) Notify(ctx context.Context, from *models.Users, msg *Message) Report {
	var report Report

	to := msg.To
	if to == 0 {
		to = from.Partner()
	}
	if to == 0 {
		return report
	}

	profile, err := s.ProfileDAO.FindByUserID(ctx, to)
	if err != nil {
		log.L.Error("notify: load profile", zap.Uint64("user_id", to), zap.Error(err))
		return report
	}
	if profile == nil || !profile.NotificationsEnabled || !msg.Event.Enabled(profile) {
		return report
	}

	subs, err := s.PushSubscriptionDAO.ListByUser(ctx, to)
	if err != nil {
		log.L.Error("notify: load subscriptions", zap.Uint64("user_id", to), zap.Error(err))
		return report
	}
	if len(subs) == 0 {
		log.L.Debug("notify: no subscriptions", zap.Uint64("user_id", to), zap.String("event", string(msg.Event)))
		return report
	}

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(s.concurrency())
	for _, sub := range subs {
		p.Go(func() {
			outcome := s.deliver(ctx, msg, sub)
			pushDeliveriesTotal.WithLabelValues(string(msg.Event), outcome.String()).Inc()

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case push.Delivered:
				report.Sent++
			case push.Gone:
				report.Failed++
				report.Removed++
			default:
				report.Failed++
			}
		})
	}
	p.Wait()

	log.L.Info("notify done",
		zap.String("event", string(msg.Event)),
		zap.Uint64("to", to),
		zap.Int("sent", report.Sent),
		zap.Int("failed", report.Failed),
		zap.Int("removed", report.Removed),
	)
	return report
}

func (s *NotifyService) deliver(ctx context.Context, msg *Message, sub *models.PushSubscription) push.Outcome {
	payload := &push.Payload{
		Title: msg.Title,
		Body:  msg.Body,
		Icon:  s.Conf.Icon,
		Badge: s.Conf.Icon,
		Tag:   Tag(msg.Event, msg.itemKey(), sub.Endpoint),
		Data:  msg.data(),
	}
	body, err := payload.Marshal()
	if err != nil {
		log.L.Error("notify: marshal payload", zap.Error(err))
		return push.Rejected
	}

	res := s.Sender.Send(ctx, push.Subscription{
		Endpoint: sub.Endpoint,
		P256dh:   sub.P256dh,
		Auth:     sub.Auth,
	}, body)

	if res.Outcome == push.Delivered {
		return res.Outcome
	}

	log.L.Warn("push delivery failed",
		zap.Uint64("subscription_id", sub.ID),
		zap.String("event", string(msg.Event)),
		zap.String("outcome", res.Outcome.String()),
		zap.Int("status", res.StatusCode),
		zap.Int64("errno", res.Errno),
		zap.String("message", res.Message),
		zap.Uint("attempts", res.Attempts),
		zap.Error(res.Err),
	)

	if res.Outcome == push.Gone {
		if err := s.PushSubscriptionDAO.DeleteByID(ctx, sub.ID); err != nil {
			log.L.Error("notify: remove gone subscription", zap.Uint64("subscription_id", sub.ID), zap.Error(err))
		}
	}
	return res.Outcome
}

func (s *NotifyService) concurrency() int {
	if s.Conf == nil || s.Conf.Concurrency <= 0 {
		return 4
	}
	return s.Conf.Concurrency
}

// Tag 通知标签，同一事件、同一内容、同一设备唯一
func Tag(event Event, itemKey, endpoint string) string {
	h := uuid.NewSHA1(uuid.NameSpaceURL, []byte(endpoint)).String()[:8]
	return fmt.Sprintf("%s-%s-%s", event, itemKey, h)
}
