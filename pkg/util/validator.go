package util

import (
	"net/url"
)

// IsValidURL verifies the string is an absolute http(s) URL
// IsValidURL 验证字符串是否为合法的绝对 http(s) 链接
func IsValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
