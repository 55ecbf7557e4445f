package service

import (
	"context"
	"testing"

	"github.com/haierkeys/notemark-service/internal/dto"
	"github.com/haierkeys/notemark-service/pkg/app"
	"github.com/haierkeys/notemark-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserServiceRegister(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	user, err := env.userService.Register(ctx, &dto.UserRegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.UID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)

	// 密码哈希不得落入响应
	stored, err := env.userRepo.GetByUID(ctx, user.UID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

// register-is-enable 关闭时拒绝注册，登录不受影响
func TestUserServiceRegisterDisabled(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	tokenManager := app.NewTokenManager(app.TokenConfig{SecretKey: "test-secret"})
	config := &ServiceConfig{User: UserServiceConfig{RegisterIsEnable: false}}
	disabled := NewUserService(env.userRepo, tokenManager, zap.NewNop(), config)

	_, err := disabled.Register(ctx, &dto.UserRegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, code.ErrorUserRegisterDisabled)

	// 开关只管注册，已有用户照常登录
	_, err = env.userService.Register(ctx, &dto.UserRegisterRequest{
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	_, err = disabled.Login(ctx, &dto.UserLoginRequest{
		Email:    "bob@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.userService.Register(ctx, &dto.UserRegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = env.userService.Register(ctx, &dto.UserRegisterRequest{
		Email:    "alice@example.com",
		Password: "another-password",
	})
	assert.ErrorIs(t, err, code.ErrorUserEmailAlreadyExists)
}

func TestUserServiceLogin(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	registered, err := env.userService.Register(ctx, &dto.UserRegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	})
	require.NoError(t, err)

	result, err := env.userService.Login(ctx, &dto.UserLoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, registered.UID, result.User.UID)
}

// 邮箱不存在与密码错误必须返回同一个错误，不暴露哪一步失败
func TestUserServiceLoginUniformFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.userService.Register(ctx, &dto.UserRegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, errWrongPassword := env.userService.Login(ctx, &dto.UserLoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	_, errUnknownEmail := env.userService.Login(ctx, &dto.UserLoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, errWrongPassword, code.ErrorUserLoginFailed)
	assert.ErrorIs(t, errUnknownEmail, code.ErrorUserLoginFailed)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}
