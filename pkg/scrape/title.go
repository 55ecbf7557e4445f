// Package scrape 获取网页标题，供书签创建时回填
package scrape

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultTimeout 抓取超时时间
	DefaultTimeout = 5 * time.Second
	// maxBodySize 响应体读取上限，防止超大页面拖垮内存
	maxBodySize = 2 << 20 // 2MB
	userAgent   = "notemark-service/1.0"
)

// TitleFetcher fetches the <title> of a remote page, best effort.
// TitleFetcher 尽力而为地抓取远端页面的 <title>
// 任何失败（网络错误、超时、非 HTML、无 title 标签）都只表现为 ok=false，
// 绝不向调用方传播错误
type TitleFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewTitleFetcher 创建 TitleFetcher，timeout 为 0 时使用默认 5 秒
func NewTitleFetcher(timeout time.Duration) *TitleFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &TitleFetcher{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Resolve 抓取 rawURL 页面并返回首个 <title> 的文本
// 返回值 ok 为 false 表示没有取到标题
func (f *TitleFetcher) Resolve(ctx context.Context, rawURL string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", false
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return "", false
	}
	return title, true
}
