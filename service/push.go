package service

import (
	"LoveNote/config"
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/types"
	"context"
	"strings"
)

var _ IPushService = (*PushService)(nil)

type IPushService interface {
	// PublicKey VAPID 公钥，未配置时 ok 为 false
	PublicKey() (key string, ok bool)
	Subscribe(ctx context.Context, userID uint64, req *types.PushSubscribeRequest) (sub *models.PushSubscription, created bool, err error)
	Unsubscribe(ctx context.Context, userID, id uint64) error
}

type PushService struct {
	Conf                *config.Push
	PushSubscriptionDAO *dao.PushSubscriptionDAO
}

func (s *PushService) PublicKey() (string, bool) {
	if !s.Conf.Configured() {
		return "", false
	}
	return s.Conf.VAPIDPublicKey, true
}

func (s *PushService) Subscribe(ctx context.Context, userID uint64, req *types.PushSubscribeRequest) (*models.PushSubscription, bool, error) {
	sub := &models.PushSubscription{
		UserID:   userID,
		Endpoint: strings.TrimSpace(req.Endpoint),
		P256dh:   strings.TrimSpace(req.Keys.P256dh),
		Auth:     strings.TrimSpace(req.Keys.Auth),
	}
	if sub.Endpoint == "" || sub.P256dh == "" || sub.Auth == "" {
		return nil, false, ErrMissingSubscription
	}

	created, err := s.PushSubscriptionDAO.Upsert(ctx, sub)
	if err != nil {
		return nil, false, err
	}
	return sub, created, nil
}

func (s *PushService) Unsubscribe(ctx context.Context, userID, id uint64) error {
	ok, err := s.PushSubscriptionDAO.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSubscriptionNotFound
	}
	return nil
}
