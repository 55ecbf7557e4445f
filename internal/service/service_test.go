package service

import (
	"context"
	"testing"

	"github.com/haierkeys/notemark-service/internal/dao"
	"github.com/haierkeys/notemark-service/internal/domain"
	"github.com/haierkeys/notemark-service/pkg/app"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnv 测试环境，内存数据库 + 全部服务
type testEnv struct {
	userService     UserService
	noteService     NoteService
	bookmarkService BookmarkService
	userRepo        domain.UserRepository
}

// stubResolver 固定返回值的标题解析器
type stubResolver struct {
	title string
	ok    bool
	calls int
}

func (r *stubResolver) Resolve(ctx context.Context, rawURL string) (string, bool) {
	r.calls++
	return r.title, r.ok
}

func newTestEnv(t *testing.T, resolver TitleResolver) *testEnv {
	t.Helper()

	lg := zap.NewNop()
	db, err := dao.NewDBEngine(dao.DatabaseConfig{
		Type:        "sqlite",
		Path:        ":memory:",
		AutoMigrate: true,
	}, lg)
	require.NoError(t, err)

	d := dao.New(db, lg)
	userRepo := dao.NewUserRepository(d)
	noteRepo := dao.NewNoteRepository(d)
	bookmarkRepo := dao.NewBookmarkRepository(d)

	tokenManager := app.NewTokenManager(app.TokenConfig{SecretKey: "test-secret"})
	config := &ServiceConfig{User: UserServiceConfig{RegisterIsEnable: true}}

	return &testEnv{
		userService:     NewUserService(userRepo, tokenManager, lg, config),
		noteService:     NewNoteService(noteRepo, lg),
		bookmarkService: NewBookmarkService(bookmarkRepo, resolver, lg),
		userRepo:        userRepo,
	}
}
