package dto

import "github.com/haierkeys/notemark-service/pkg/timex"

// NoteCreateRequest 创建笔记请求参数
type NoteCreateRequest struct {
	Title   string   `json:"title" form:"title" binding:"required"`
	Content string   `json:"content" form:"content"`
	Tags    []string `json:"tags" form:"tags"`
}

// NoteUpdateRequest 更新笔记请求参数
// 全部字段可选，仅更新显式出现的字段；tags 整体替换
type NoteUpdateRequest struct {
	Title    *string   `json:"title" binding:"omitempty,min=1"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	Favorite *bool     `json:"favorite"`
}

// ItemListRequest 列表查询参数，笔记与书签共用
type ItemListRequest struct {
	Query string `json:"q" form:"q"`
	Tags  string `json:"tags" form:"tags"`
}

// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID        int64      `json:"id"`
	UID       int64      `json:"uid,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	Favorite  bool       `json:"favorite"`
	UpdatedAt timex.Time `json:"updatedAt"`
	CreatedAt timex.Time `json:"createdAt"`
}
