package service

import (
	"context"
	"errors"

	"github.com/haierkeys/notemark-service/internal/domain"
	"github.com/haierkeys/notemark-service/internal/dto"
	"github.com/haierkeys/notemark-service/pkg/app"
	"github.com/haierkeys/notemark-service/pkg/code"
	"github.com/haierkeys/notemark-service/pkg/timex"
	"github.com/haierkeys/notemark-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Register 用户注册
	Register(ctx context.Context, params *dto.UserRegisterRequest) (*dto.UserDTO, error)

	// Login 用户登录，成功时签发 Token
	Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.UserLoginDTO, error)
}

// userService 实现 UserService 接口
type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *userService) domainToDTO(user *domain.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	return &dto.UserDTO{
		UID:       user.UID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: timex.Time(user.CreatedAt),
	}
}

// Register 用户注册
// 邮箱已存在返回 409；响应永远不包含密码哈希
func (s *userService) Register(ctx context.Context, params *dto.UserRegisterRequest) (*dto.UserDTO, error) {
	// 注册开关关闭时直接拒绝
	if s.config != nil && !s.config.User.RegisterIsEnable {
		return nil, code.ErrorUserRegisterDisabled
	}

	// 检查邮箱是否已存在
	existing, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("userService.Register.GetByEmail err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}
	if existing != nil {
		return nil, code.ErrorUserEmailAlreadyExists
	}

	// 生成密码哈希
	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		s.logger.Error("userService.Register.GeneratePasswordHash err", zap.Error(err))
		return nil, code.ErrorServerInternal
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:    params.Email,
		Name:     params.Name,
		Password: password,
	})
	if err != nil {
		s.logger.Error("userService.Register.Create err", zap.Error(err))
		return nil, code.ErrorDBQuery
	}

	return s.domainToDTO(user), nil
}

// Login 用户登录
// 邮箱不存在与密码错误返回同一条消息，不暴露哪一步失败
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.UserLoginDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("userService.Login.GetByEmail err", zap.Error(err))
		}
		return nil, code.ErrorUserLoginFailed
	}

	// 验证密码
	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorUserLoginFailed
	}

	// 生成 Token
	token, err := s.tokenManager.Generate(user.UID)
	if err != nil {
		s.logger.Error("userService.Login.TokenGenerate err", zap.Error(err))
		return nil, code.ErrorTokenGenerate
	}

	return &dto.UserLoginDTO{
		Token: token,
		User:  s.domainToDTO(user),
	}, nil
}
