package push

import (
	"context"
	"fmt"
)

// Subscription 浏览器 PushSubscription 的 endpoint 和密钥
type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Outcome 单个 endpoint 的投递结果
type Outcome int

const (
	Delivered Outcome = iota
	// Gone 订阅已失效（404/410），调用方应删除订阅
	Gone
	// Rejected 推送服务拒绝（其他 4xx），重试无意义
	Rejected
	// Transient 429/5xx/网络错误，重试后仍失败
	Transient
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Gone:
		return "gone"
	case Rejected:
		return "rejected"
	case Transient:
		return "transient"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result 投递结果，Errno/Message 来自推送服务返回的错误体
type Result struct {
	Outcome    Outcome
	StatusCode int
	Attempts   uint
	Errno      int64
	Message    string
	Err        error
}

type Sender interface {
	Send(ctx context.Context, sub Subscription, payload []byte) Result
}

// Classify 根据 HTTP 状态码归类
func Classify(status int) Outcome {
	switch {
	case status >= 200 && status < 300:
		return Delivered
	case status == 404 || status == 410:
		return Gone
	case status == 429 || status >= 500:
		return Transient
	case status >= 400:
		return Rejected
	}
	return Transient
}
