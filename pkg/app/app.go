// Package app 提供 HTTP 响应与请求处理的通用辅助
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

type Response struct {
	Ctx *gin.Context
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// ToResponse 输出 200 响应
func (r *Response) ToResponse(data any) {
	r.send(http.StatusOK, data)
}

// ToCreatedResponse 输出 201 响应
func (r *Response) ToCreatedResponse(data any) {
	r.send(http.StatusCreated, data)
}

// ToNoContentResponse 输出 204 响应，无响应体
func (r *Response) ToNoContentResponse() {
	r.Ctx.Status(http.StatusNoContent)
}

func (r *Response) send(statusCode int, content any) {
	r.Ctx.JSON(statusCode, content)
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}
