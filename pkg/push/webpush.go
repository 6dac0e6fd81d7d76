package push

import (
	"LoveNote/config"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/avast/retry-go/v4"
	"github.com/tidwall/gjson"
)

var _ Sender = (*WebPush)(nil)

// statusError 非 2xx 响应
type statusError struct {
	status int
	errno  int64
	msg    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("push service responded %d: %s", e.status, e.msg)
}

// WebPush 基于 VAPID 的 Web Push 投递
type WebPush struct {
	conf   *config.Push
	client *http.Client
}

func NewWebPush(conf *config.Push) *WebPush {
	return &WebPush{conf: conf, client: &http.Client{}}
}

// WithClient 替换 HTTP 客户端
func (w *WebPush) WithClient(client *http.Client) *WebPush {
	w.client = client
	return w
}

func (w *WebPush) Send(ctx context.Context, sub Subscription, payload []byte) Result {
	var (
		res      Result
		attempts uint
	)

	err := retry.Do(
		func() error {
			attempts++
			return w.sendOnce(ctx, sub, payload)
		},
		retry.Context(ctx),
		retry.Attempts(w.attempts()),
		retry.Delay(w.conf.RetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var se *statusError
			if errors.As(err, &se) {
				return Classify(se.status) == Transient
			}
			return true
		}),
	)
	res.Attempts = attempts

	if err == nil {
		res.Outcome = Delivered
		res.StatusCode = http.StatusCreated
		return res
	}

	res.Err = err
	var se *statusError
	if errors.As(err, &se) {
		res.StatusCode = se.status
		res.Errno = se.errno
		res.Message = se.msg
		res.Outcome = Classify(se.status)
		return res
	}
	res.Outcome = Transient
	return res
}

func (w *WebPush) sendOnce(ctx context.Context, sub Subscription, payload []byte) error {
	if w.conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.conf.Timeout)
		defer cancel()
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			Auth:   sub.Auth,
			P256dh: sub.P256dh,
		},
	}, &webpush.Options{
		HTTPClient:      w.client,
		Subscriber:      strings.TrimPrefix(w.conf.Subscriber, "mailto:"),
		VAPIDPublicKey:  w.conf.VAPIDPublicKey,
		VAPIDPrivateKey: w.conf.VAPIDPrivateKey,
		TTL:             w.conf.TTL,
		Urgency:         webpush.UrgencyNormal,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	se := &statusError{status: resp.StatusCode, msg: http.StatusText(resp.StatusCode)}
	// autopush 的错误体: {"code":410,"errno":103,"error":"Gone","message":"..."}
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		se.errno = parsed.Get("errno").Int()
		if m := parsed.Get("message").String(); m != "" {
			se.msg = m
		}
	} else if len(body) > 0 {
		se.msg = strings.TrimSpace(string(body))
	}
	return se
}

func (w *WebPush) attempts() uint {
	if w.conf.RetryAttempts == 0 {
		return 1
	}
	return w.conf.RetryAttempts
}

// GenerateVAPIDKeys 生成一对 VAPID 密钥（base64url）
func GenerateVAPIDKeys() (privateKey, publicKey string, err error) {
	return webpush.GenerateVAPIDKeys()
}
