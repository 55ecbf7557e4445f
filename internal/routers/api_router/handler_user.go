package api_router

import (
	"github.com/haierkeys/notemark-service/internal/app"
	"github.com/haierkeys/notemark-service/internal/dto"
	pkgapp "github.com/haierkeys/notemark-service/pkg/app"
	"github.com/haierkeys/notemark-service/pkg/code"
	apperrors "github.com/haierkeys/notemark-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler user API router handler
// UserHandler 用户 API 路由处理器
// Uses App Container to inject dependencies, supports unified error handling
// 使用 App Container 注入依赖，支持统一错误处理
type UserHandler struct {
	*Handler
}

// NewUserHandler creates UserHandler instance
// NewUserHandler 创建 UserHandler 实例
func NewUserHandler(a *app.App) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(a),
	}
}

// Register user registration
// @Summary User registration
// @Description Handle user registration HTTP request, validate parameters and call UserService.
// @Description 处理用户注册 HTTP 请求，验证参数并调用 UserService。
// @Tags User
// @Accept json
// @Produce json
// @Param params body dto.UserRegisterRequest true "Register Parameters"
// @Success 201 {object} dto.UserDTO "Created"
// @Failure 400 "Invalid Parameters"
// @Failure 403 "Registration Disabled"
// @Failure 409 "Email Already Registered"
// @Router /api/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserRegisterRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("UserHandler.Register.BindAndValid errs", zap.Error(errs))
		apperrors.ErrorResponse(c, code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	ctx := c.Request.Context()

	userDTO, err := h.App.UserService.Register(ctx, params)
	if err != nil {
		h.logError(c, "UserHandler.Register", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToCreatedResponse(userDTO)
}

// Login user login
// @Summary User login
// @Description Handle user login HTTP request, validate parameters and return auth token.
// @Description 处理用户登录 HTTP 请求，验证参数并返回认证 Token。
// @Tags User
// @Accept json
// @Produce json
// @Param params body dto.UserLoginRequest true "Login Parameters"
// @Success 200 {object} dto.UserLoginDTO "Success"
// @Failure 400 "Invalid Parameters"
// @Failure 401 "Invalid Credentials"
// @Router /api/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UserLoginRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Warn("UserHandler.Login.BindAndValid errs", zap.Error(errs))
		apperrors.ErrorResponse(c, code.ErrorInvalidParams.WithDetails(errs.Errors()...))
		return
	}

	ctx := c.Request.Context()

	loginDTO, err := h.App.UserService.Login(ctx, params)
	if err != nil {
		h.logError(c, "UserHandler.Login", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(loginDTO)
}
