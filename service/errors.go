package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind 业务错误分类，handler 据此映射 HTTP 状态码
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is 同类同信息视为同一错误，便于 errors.Is 比较哨兵
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Msg == e.Msg
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func InvalidInput(msg string) *Error { return newError(KindInvalidInput, msg) }

var (
	ErrInvalidCredentials = newError(KindUnauthorized, "用户名或密码错误")
	ErrUserNotFound       = newError(KindUnauthorized, "用户不存在")
	ErrUsernameTaken      = newError(KindInvalidInput, "用户名已被占用")
	ErrEmailTaken         = newError(KindInvalidInput, "邮箱已被占用")

	ErrEmptyCode     = newError(KindInvalidInput, "配对码不能为空")
	ErrInvalidCode   = newError(KindNotFound, "配对码无效")
	ErrSelfLink      = newError(KindInvalidInput, "不能和自己配对")
	ErrAlreadyPaired = newError(KindConflict, "你或对方已经有配对对象")
	ErrNoPartner     = newError(KindInvalidInput, "当前没有配对对象")
	ErrPartnerAbsent = newError(KindNotFound, "当前没有配对对象")

	ErrNotFound           = newError(KindNotFound, "内容不存在")
	ErrForbidden          = newError(KindForbidden, "没有权限操作该内容")
	ErrInvalidEditState   = newError(KindConflict, "当前状态不允许发起编辑")
	ErrInvalidDeleteState = newError(KindConflict, "当前状态不允许发起删除")
	ErrJournalDateTaken   = newError(KindConflict, "当天已经写过日记")
	ErrInvalidDate        = newError(KindInvalidInput, "日期格式应为 YYYY-MM-DD")
	ErrTitleTooLong       = newError(KindInvalidInput, "标题不能超过200个字符")
	ErrMoodTooLong        = newError(KindInvalidInput, "心情不能超过50个字符")

	ErrMissingSubscription  = newError(KindInvalidInput, "endpoint、p256dh、auth 不能为空")
	ErrSubscriptionNotFound = newError(KindNotFound, "订阅不存在")

	// errReminderClaimed 当天已提醒，仅在提醒任务内部使用
	errReminderClaimed = newError(KindConflict, "今天已经提醒过")
)

// notFound 把 gorm 的记录不存在统一为 ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// KindOf 非业务错误返回 0
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
