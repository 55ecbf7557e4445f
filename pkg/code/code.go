// Package code 定义带 HTTP 状态码的业务错误
package code

import (
	"fmt"
	"net/http"
)

// Code 业务错误，携带 HTTP 状态码、消息和可选的详细信息
type Code struct {
	// HTTP 状态码
	statusCode int
	// 错误消息
	msg string
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

// NewError 创建错误对象
func NewError(statusCode int, msg string) *Code {
	return &Code{statusCode: statusCode, msg: msg}
}

// Error 实现 error 接口
func (e *Code) Error() string {
	return e.msg
}

func (e *Code) StatusCode() int {
	return e.statusCode
}

func (e *Code) Msg() string {
	return e.msg
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

// Clone 创建一个新的 Code 副本
// 预定义的错误对象是共享的，附加信息前必须先 Clone
func (e *Code) Clone() *Code {
	c := &Code{
		statusCode: e.statusCode,
		msg:        e.msg,
	}
	if e.haveDetails {
		c.details = append(c.details, e.details...)
		c.haveDetails = true
	}
	return c
}

// WithDetails 返回附带详情的副本
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.details = append(c.details, details...)
	c.haveDetails = true
	return c
}

// WithMsgf 返回格式化消息的副本
func (e *Code) WithMsgf(format string, args ...any) *Code {
	c := e.Clone()
	c.msg = fmt.Sprintf(format, args...)
	return c
}

var (
	// 参数校验 400
	ErrorInvalidParams = NewError(http.StatusBadRequest, "Validation failed")
	ErrorInvalidID     = NewError(http.StatusBadRequest, "Invalid id")

	// 认证 401
	ErrorNotUserAuthToken     = NewError(http.StatusUnauthorized, "Authorization header missing")
	ErrorUserAuthTokenFormat  = NewError(http.StatusUnauthorized, "Invalid Authorization header format")
	ErrorInvalidUserAuthToken = NewError(http.StatusUnauthorized, "Invalid or expired token")
	// 登录失败统一返回同一条消息，不暴露邮箱是否存在
	ErrorUserLoginFailed = NewError(http.StatusUnauthorized, "Invalid credentials")

	// 权限 403
	ErrorForbidden            = NewError(http.StatusForbidden, "Forbidden")
	ErrorUserRegisterDisabled = NewError(http.StatusForbidden, "Registration is disabled")

	// 资源 404
	ErrorNoteNotFound     = NewError(http.StatusNotFound, "Note not found")
	ErrorBookmarkNotFound = NewError(http.StatusNotFound, "Bookmark not found")
	ErrorNotFoundAPI      = NewError(http.StatusNotFound, "Route not found")

	// 冲突 409
	ErrorUserEmailAlreadyExists = NewError(http.StatusConflict, "Email is already registered")

	// 服务端 500
	ErrorServerInternal = NewError(http.StatusInternalServerError, "Internal server error")
	ErrorDBQuery        = NewError(http.StatusInternalServerError, "Internal server error")
	ErrorTokenGenerate  = NewError(http.StatusInternalServerError, "Internal server error")
)
