package service

import (
	"LoveNote/config"
	"LoveNote/dao"
	"LoveNote/models"
	"LoveNote/pkg/push"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeSender 记录投递请求，按 endpoint 返回预设结果
type fakeSender struct {
	mu       sync.Mutex
	sent     []push.Subscription
	payloads [][]byte
	outcomes map[string]push.Outcome
}

func (f *fakeSender) Send(_ context.Context, sub push.Subscription, payload []byte) push.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sub)
	f.payloads = append(f.payloads, payload)
	outcome, ok := f.outcomes[sub.Endpoint]
	if !ok {
		outcome = push.Delivered
	}
	return push.Result{Outcome: outcome, StatusCode: 201, Attempts: 1}
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// events 已发送通知的事件类型
func (f *fakeSender) events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.payloads))
	for _, p := range f.payloads {
		out = append(out, gjson.GetBytes(p, "data.type").String())
	}
	return out
}

func (f *fakeSender) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.payloads = nil
}

type testEnv struct {
	db       *gorm.DB
	sender   *fakeSender
	users    *dao.Users
	profiles *dao.ProfileDAO
	subs     *dao.PushSubscriptionDAO

	visibility *VisibilityService
	notify     *NotifyService
	partner    *PartnerService
	note       *NoteService
	journal    *JournalService
	like       *LikeService
	push       *PushService
	profile    *ProfileService
	user       *UserService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接是独立的库
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Users{},
		&models.Note{},
		&models.JournalEntry{},
		&models.NoteLike{},
		&models.UserProfile{},
		&models.PushSubscription{},
	))
	require.NoError(t, db.Exec("CREATE UNIQUE INDEX uk_author_date ON journal_entries(author_id, date)").Error)
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	cfg := &config.Config{}
	cfg.App.HashSalt = "test-salt"
	cfg.Jwt.Secret = "test-secret"
	cfg.Push.Icon = "/icon-192.svg"
	cfg.Push.Concurrency = 2

	e := &testEnv{
		db:       db,
		sender:   &fakeSender{outcomes: map[string]push.Outcome{}},
		users:    dao.NewUsers(db),
		profiles: dao.NewProfileDAO(db),
		subs:     dao.NewPushSubscriptionDAO(db),
	}
	notes := dao.NewNoteDAO(db)
	likes := dao.NewNoteLikeDAO(db)

	e.visibility = &VisibilityService{UsersDAO: e.users}
	e.notify = &NotifyService{
		ProfileDAO:          e.profiles,
		PushSubscriptionDAO: e.subs,
		Sender:              e.sender,
		Conf:                &cfg.Push,
	}
	e.partner = &PartnerService{UsersDAO: e.users, ProfileDAO: e.profiles}
	e.note = &NoteService{
		NoteDAO:     notes,
		NoteLikeDAO: likes,
		UsersDAO:    e.users,
		Visibility:  e.visibility,
		Notify:      e.notify,
	}
	e.journal = &JournalService{
		JournalDAO: dao.NewJournalDAO(db),
		UsersDAO:   e.users,
		Visibility: e.visibility,
		Notify:     e.notify,
	}
	e.like = &LikeService{
		NoteDAO:     notes,
		NoteLikeDAO: likes,
		Visibility:  e.visibility,
		Notify:      e.notify,
	}
	e.push = &PushService{Conf: &cfg.Push, PushSubscriptionDAO: e.subs}
	e.profile = &ProfileService{ProfileDAO: e.profiles}
	e.user = &UserService{Config: cfg, UsersDAO: e.users}
	return e
}

func (e *testEnv) newUser(t *testing.T, name string) *models.Users {
	t.Helper()
	code := "CODE-" + name
	u := &models.Users{Username: name, Email: name + "@example.com", Password: "x", PartnerCode: &code}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

// pair 创建两个已配对的用户
func (e *testEnv) pair(t *testing.T, a, b string) (*models.Users, *models.Users) {
	t.Helper()
	ua, ub := e.newUser(t, a), e.newUser(t, b)
	_, err := e.partner.ConnectPartner(context.Background(), ua.ID, *ub.PartnerCode)
	require.NoError(t, err)

	ua, err = e.users.FindById(context.Background(), ua.ID)
	require.NoError(t, err)
	ub, err = e.users.FindById(context.Background(), ub.ID)
	require.NoError(t, err)
	return ua, ub
}

// subscribe 开启通知并登记一个推送订阅
func (e *testEnv) subscribe(t *testing.T, userID uint64, endpoint string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.profiles.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	require.NoError(t, e.profiles.UpdateByUserID(ctx, userID, map[string]any{"notifications_enabled": true}))
	_, err = e.subs.Upsert(ctx, &models.PushSubscription{UserID: userID, Endpoint: endpoint, P256dh: "p256dh", Auth: "auth"})
	require.NoError(t, err)
}

func ptr[T any](v T) *T { return &v }
