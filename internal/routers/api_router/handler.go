// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"strconv"

	"github.com/haierkeys/notemark-service/internal/app"
	"github.com/haierkeys/notemark-service/internal/middleware"
	"github.com/haierkeys/notemark-service/pkg/code"
	"github.com/haierkeys/notemark-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError 记录处理器层错误，附带 Trace ID
// 业务错误在 Service 层已经记录过，这里只记 Warn
func (h *Handler) logError(c *gin.Context, scope string, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("trace_id", c.GetString(middleware.TraceIDKey)),
	}
	if errors.IsCode(err) {
		h.App.Logger().Warn(scope+" err", fields...)
		return
	}
	h.App.Logger().Error(scope+" err", fields...)
}

// parseID 解析路径中的 id 参数，非正整数返回 400 错误
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, code.ErrorInvalidID
	}
	return id, nil
}
