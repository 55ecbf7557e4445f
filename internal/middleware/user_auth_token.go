package middleware

import (
	"strings"

	"github.com/haierkeys/notemark-service/pkg/app"
	"github.com/haierkeys/notemark-service/pkg/code"
	"github.com/haierkeys/notemark-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// UserAuthToken 用户 Token 认证中间件
// 从 Authorization 头解析 Bearer Token，成功时将用户身份写入上下文。
// optional 为 true 时任何解析失败都放行为匿名请求，不返回 401
func UserAuthToken(tokenManager app.TokenManager, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if header == "" {
			if optional {
				c.Next()
				return
			}
			errors.ErrorResponse(c, code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			if optional {
				c.Next()
				return
			}
			errors.ErrorResponse(c, code.ErrorUserAuthTokenFormat)
			c.Abort()
			return
		}

		user, err := tokenManager.Parse(parts[1])
		if err != nil {
			if optional {
				c.Next()
				return
			}
			errors.ErrorResponse(c, code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		}

		c.Set("user_token", user)
		c.Next()
	}
}
