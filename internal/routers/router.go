// Package routers 装配 HTTP 路由
package routers

import (
	"time"

	"github.com/haierkeys/notemark-service/internal/app"
	"github.com/haierkeys/notemark-service/internal/middleware"
	"github.com/haierkeys/notemark-service/internal/routers/api_router"

	ut "github.com/go-playground/universal-translator"
	"github.com/gin-gonic/gin"
)

// NewRouter 创建 API 路由
// 所有业务路由挂在 /api 前缀下；笔记与书签路由使用可选认证，
// 带合法 Token 的请求以该用户身份访问，其余请求按匿名处理
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.Tracer())
		api.Use(middleware.Metrics())
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLog())
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		bookmarkHandler := api_router.NewBookmarkHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/health", healthHandler.Check)

		api.POST("/auth/register", userHandler.Register)
		api.POST("/auth/login", userHandler.Login)

		// 可选认证：Token 合法则注入用户身份，否则匿名放行
		optionalAuth := middleware.UserAuthToken(appContainer.TokenManager, true)

		notes := api.Group("/notes", optionalAuth)
		{
			notes.POST("", noteHandler.Create)
			notes.GET("", noteHandler.List)
			notes.GET("/:id", noteHandler.Get)
			notes.PUT("/:id", noteHandler.Update)
			notes.DELETE("/:id", noteHandler.Delete)
		}

		bookmarks := api.Group("/bookmarks", optionalAuth)
		{
			bookmarks.POST("", bookmarkHandler.Create)
			bookmarks.GET("", bookmarkHandler.List)
			bookmarks.GET("/:id", bookmarkHandler.Get)
			bookmarks.PUT("/:id", bookmarkHandler.Update)
			bookmarks.DELETE("/:id", bookmarkHandler.Delete)
		}
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
