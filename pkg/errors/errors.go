// Package errors 提供统一错误响应处理
package errors

import (
	"errors"
	"net/http"

	"github.com/haierkeys/notemark-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// errBody 错误响应体，遵循 {"error": message} 约定
// Details 仅在参数校验失败时携带字段级错误
type errBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// ErrorResponse unified error response handling
// ErrorResponse 统一错误响应处理
// 业务错误（*code.Code）按自身状态码输出，其余错误一律 500 并隐藏细节
func ErrorResponse(c *gin.Context, err error) {
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		body := &errBody{Error: codeErr.Msg()}
		if codeErr.HaveDetails() {
			body.Details = codeErr.Details()
		}
		c.JSON(codeErr.StatusCode(), body)
		return
	}

	// 未知错误，返回内部错误
	c.JSON(http.StatusInternalServerError, &errBody{Error: code.ErrorServerInternal.Msg()})
}

// IsCode 检查错误链中是否为业务错误
func IsCode(err error) bool {
	var codeErr *code.Code
	return errors.As(err, &codeErr)
}
