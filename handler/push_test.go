package handler

import (
	"LoveNote/models"
	"LoveNote/service"
	"LoveNote/types"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type stubPushService struct {
	key     string
	created bool
	err     error
}

func (s *stubPushService) PublicKey() (string, bool) {
	return s.key, s.key != ""
}

func (s *stubPushService) Subscribe(_ context.Context, userID uint64, req *types.PushSubscribeRequest) (*models.PushSubscription, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	return &models.PushSubscription{ID: 3, UserID: userID, Endpoint: req.Endpoint}, s.created, nil
}

func (s *stubPushService) Unsubscribe(context.Context, uint64, uint64) error {
	return s.err
}

func TestPushPublicKey(t *testing.T) {
	w := do(newEngine(&Push{Config: testConfig(), PushService: &stubPushService{}}), http.MethodGet, "/api/push/public-key", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(newEngine(&Push{Config: testConfig(), PushService: &stubPushService{key: "BPub"}}), http.MethodGet, "/api/push/public-key", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BPub", gjson.Get(w.Body.String(), "data.publicKey").Str)
}

func TestPushSubscribe(t *testing.T) {
	body := `{"endpoint":"https://push.example/1","keys":{"p256dh":"k","auth":"a"}}`

	w := do(newEngine(&Push{Config: testConfig(), PushService: &stubPushService{created: true}}), http.MethodPost, "/api/push/subscribe", bearer(t, 7), body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(3), gjson.Get(w.Body.String(), "data.id").Int())

	w = do(newEngine(&Push{Config: testConfig(), PushService: &stubPushService{}}), http.MethodPost, "/api/push/subscribe", bearer(t, 7), body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(newEngine(&Push{Config: testConfig(), PushService: &stubPushService{err: service.ErrMissingSubscription}}), http.MethodPost, "/api/push/subscribe", bearer(t, 7), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(newEngine(&Push{Config: testConfig(), PushService: &stubPushService{}}), http.MethodPost, "/api/push/subscribe", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPushUnsubscribe(t *testing.T) {
	w := do(newEngine(&Push{Config: testConfig(), PushService: &stubPushService{err: service.ErrSubscriptionNotFound}}), http.MethodDelete, "/api/push/subscribe/9", bearer(t, 7), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
