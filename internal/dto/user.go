// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/notemark-service/pkg/timex"

// UserRegisterRequest 用户注册请求参数
type UserRegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Name     string `json:"name" form:"name"`
}

// UserLoginRequest 用户登录请求参数
type UserLoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// UserDTO 用户公开信息，永远不携带密码哈希
type UserDTO struct {
	UID       int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt timex.Time `json:"createdAt"`
}

// UserLoginDTO 登录响应：令牌加用户公开信息
type UserLoginDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
