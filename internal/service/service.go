// Package service 实现业务逻辑层
package service

import "context"

// ServiceConfig Service 层配置
type ServiceConfig struct {
	User UserServiceConfig
}

// UserServiceConfig 用户相关配置
type UserServiceConfig struct {
	// RegisterIsEnable 注册是否启用
	RegisterIsEnable bool
}

// TitleResolver resolves a page title for a URL, best effort.
// TitleResolver 尽力而为地解析 URL 对应页面的标题
// ok 为 false 表示未取到标题，调用方不得将其视为错误
type TitleResolver interface {
	Resolve(ctx context.Context, rawURL string) (title string, ok bool)
}
