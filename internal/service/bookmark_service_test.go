package service

import (
	"context"
	"testing"

	"github.com/haierkeys/notemark-service/internal/dto"
	"github.com/haierkeys/notemark-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkServiceCreate(t *testing.T) {
	env := newTestEnv(t, &stubResolver{})
	ctx := context.Background()

	bookmark, err := env.bookmarkService.Create(ctx, 1, &dto.BookmarkCreateRequest{
		URL:         "https://example.com",
		Title:       "Example",
		Description: "sample site",
		Tags:        []string{"Ref"},
	})
	require.NoError(t, err)
	assert.NotZero(t, bookmark.ID)
	assert.Equal(t, "https://example.com", bookmark.URL)
	assert.Equal(t, "Example", bookmark.Title)
	assert.Equal(t, []string{"ref"}, bookmark.Tags)
}

// 标题缺省时由解析器回填
func TestBookmarkServiceCreateTitleBackfill(t *testing.T) {
	resolver := &stubResolver{title: "Fetched Title", ok: true}
	env := newTestEnv(t, resolver)

	bookmark, err := env.bookmarkService.Create(context.Background(), 1, &dto.BookmarkCreateRequest{
		URL: "https://example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fetched Title", bookmark.Title)
	assert.Equal(t, 1, resolver.calls)
}

// 显式给了标题就不抓取
func TestBookmarkServiceCreateTitleProvided(t *testing.T) {
	resolver := &stubResolver{title: "Fetched Title", ok: true}
	env := newTestEnv(t, resolver)

	bookmark, err := env.bookmarkService.Create(context.Background(), 1, &dto.BookmarkCreateRequest{
		URL:   "https://example.com",
		Title: "Mine",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mine", bookmark.Title)
	assert.Zero(t, resolver.calls)
}

// 抓取失败不影响创建，标题保持原样
func TestBookmarkServiceCreateResolveFails(t *testing.T) {
	env := newTestEnv(t, &stubResolver{ok: false})

	bookmark, err := env.bookmarkService.Create(context.Background(), 1, &dto.BookmarkCreateRequest{
		URL: "https://unreachable.example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, bookmark.Title)
}

// 非 http(s) 链接不发起抓取
func TestBookmarkServiceCreateSkipsNonHTTPFetch(t *testing.T) {
	resolver := &stubResolver{title: "Fetched Title", ok: true}
	env := newTestEnv(t, resolver)

	bookmark, err := env.bookmarkService.Create(context.Background(), 1, &dto.BookmarkCreateRequest{
		URL: "ftp://files.example.com/readme",
	})
	require.NoError(t, err)
	assert.Empty(t, bookmark.Title)
	assert.Zero(t, resolver.calls)
}

func TestBookmarkServiceOwnership(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	bookmark, err := env.bookmarkService.Create(ctx, 1, &dto.BookmarkCreateRequest{
		URL:   "https://example.com",
		Title: "mine",
	})
	require.NoError(t, err)

	_, err = env.bookmarkService.Get(ctx, 2, bookmark.ID)
	assert.ErrorIs(t, err, code.ErrorForbidden)
	err = env.bookmarkService.Delete(ctx, 2, bookmark.ID)
	assert.ErrorIs(t, err, code.ErrorForbidden)

	got, err := env.bookmarkService.Get(ctx, 1, bookmark.ID)
	require.NoError(t, err)
	assert.Equal(t, bookmark.ID, got.ID)
}

func TestBookmarkServiceUpdatePartial(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	bookmark, err := env.bookmarkService.Create(ctx, 1, &dto.BookmarkCreateRequest{
		URL:   "https://example.com",
		Title: "original",
	})
	require.NoError(t, err)

	updated, err := env.bookmarkService.Update(ctx, 1, bookmark.ID, &dto.BookmarkUpdateRequest{
		Description: ptr("now described"),
		Favorite:    ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Title)
	assert.Equal(t, "https://example.com", updated.URL)
	assert.Equal(t, "now described", updated.Description)
	assert.True(t, updated.Favorite)
}

func TestBookmarkServiceDelete(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	bookmark, err := env.bookmarkService.Create(ctx, 1, &dto.BookmarkCreateRequest{
		URL:   "https://example.com",
		Title: "gone",
	})
	require.NoError(t, err)

	require.NoError(t, env.bookmarkService.Delete(ctx, 1, bookmark.ID))
	assert.ErrorIs(t, env.bookmarkService.Delete(ctx, 1, bookmark.ID), code.ErrorBookmarkNotFound)
}

// 书签的子串匹配额外覆盖 url 列
func TestBookmarkServiceListQueryURL(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.bookmarkService.Create(ctx, 1, &dto.BookmarkCreateRequest{
		URL:   "https://golang.org/doc",
		Title: "docs",
	})
	require.NoError(t, err)
	_, err = env.bookmarkService.Create(ctx, 1, &dto.BookmarkCreateRequest{
		URL:   "https://example.com",
		Title: "other",
	})
	require.NoError(t, err)

	bookmarks, err := env.bookmarkService.List(ctx, 1, &dto.ItemListRequest{Query: "golang"})
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "docs", bookmarks[0].Title)
}
