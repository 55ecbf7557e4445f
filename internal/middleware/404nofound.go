package middleware

import (
	"github.com/haierkeys/notemark-service/pkg/code"
	"github.com/haierkeys/notemark-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
// NoFound 404 处理
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		errors.ErrorResponse(c, code.ErrorNotFoundAPI)
		c.Abort()
	}
}
