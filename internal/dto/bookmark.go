package dto

import "github.com/haierkeys/notemark-service/pkg/timex"

// BookmarkCreateRequest 创建书签请求参数
// title 为空时由服务端尽力抓取页面标题回填
type BookmarkCreateRequest struct {
	URL         string   `json:"url" form:"url" binding:"required,url"`
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Tags        []string `json:"tags" form:"tags"`
}

// BookmarkUpdateRequest 更新书签请求参数
// 全部字段可选，仅更新显式出现的字段；tags 整体替换
type BookmarkUpdateRequest struct {
	URL         *string   `json:"url" binding:"omitempty,url"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Favorite    *bool     `json:"favorite"`
}

// BookmarkDTO 书签数据传输对象
type BookmarkDTO struct {
	ID          int64      `json:"id"`
	UID         int64      `json:"uid,omitempty"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Favorite    bool       `json:"favorite"`
	UpdatedAt   timex.Time `json:"updatedAt"`
	CreatedAt   timex.Time `json:"createdAt"`
}
