package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTitleFetcher_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title> Example Domain </title></head><body><title>second</title></body></html>`))
	}))
	defer srv.Close()

	f := NewTitleFetcher(0)
	title, ok := f.Resolve(context.Background(), srv.URL)

	assert.True(t, ok)
	// 取首个 title 并去除首尾空白
	assert.Equal(t, "Example Domain", title)
}

func TestTitleFetcher_ResolveNoTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head></head><body>no title here</body></html>`))
	}))
	defer srv.Close()

	f := NewTitleFetcher(0)
	title, ok := f.Resolve(context.Background(), srv.URL)

	assert.False(t, ok)
	assert.Equal(t, "", title)
}

func TestTitleFetcher_ResolveErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewTitleFetcher(0)
	_, ok := f.Resolve(context.Background(), srv.URL)

	assert.False(t, ok)
}

func TestTitleFetcher_ResolveUnreachable(t *testing.T) {
	// 端口已关闭的地址
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewTitleFetcher(0)
	_, ok := f.Resolve(context.Background(), url)

	assert.False(t, ok)
}

func TestTitleFetcher_ResolveTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`<html><head><title>slow</title></head></html>`))
	}))
	defer srv.Close()

	f := NewTitleFetcher(50 * time.Millisecond)
	_, ok := f.Resolve(context.Background(), srv.URL)

	assert.False(t, ok)
}
