package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError 单个字段的校验错误
type ValidError struct {
	Key     string
	Message string
}

func (v *ValidError) Error() string {
	return v.Message
}

type ValidErrors []*ValidError

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

// Errors 返回所有错误消息
func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Message)
	}
	return errs
}

// BindAndValid binds request params and translates validation errors
// BindAndValid 绑定请求参数并翻译校验错误
func BindAndValid(c *gin.Context, v any) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			// 非校验类错误（JSON 语法、类型不匹配等）
			errs = append(errs, &ValidError{Key: "body", Message: err.Error()})
			return false, errs
		}

		trans := translatorFrom(c)
		for _, fieldErr := range verrs {
			message := fieldErr.Error()
			if trans != nil {
				message = fieldErr.Translate(trans)
			}
			errs = append(errs, &ValidError{
				Key:     fieldErr.Field(),
				Message: message,
			})
		}
		return false, errs
	}

	return true, nil
}

// translatorFrom 从上下文取出语言翻译器，默认英文
func translatorFrom(c *gin.Context) ut.Translator {
	if v, exist := c.Get("trans"); exist {
		if trans, ok := v.(ut.Translator); ok {
			return trans
		}
	}
	if v, exist := c.Get("uni"); exist {
		if uni, ok := v.(*ut.UniversalTranslator); ok {
			if trans, found := uni.GetTranslator("en"); found {
				return trans
			}
		}
	}
	return nil
}
